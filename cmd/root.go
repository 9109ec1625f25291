package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/kiesman99/prepare-icon/internal/logging"
	"github.com/kiesman99/prepare-icon/internal/png"
	"github.com/kiesman99/prepare-icon/internal/prepare"
	"github.com/kiesman99/prepare-icon/pkg/icon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const usage = "Usage: prepare_icon <input.png> <output.png> [margin_ratio]"

var (
	cfgFile      string
	configErr    error
	configLoaded bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "prepare_icon <input.png> <output.png> [margin_ratio]",
	Short: "Crop a PNG to its visible content and center it on a square canvas",
	Long: `prepare_icon trims the fully transparent border off a PNG, then centers the
remaining content on a transparent square canvas, leaving margin_ratio of the
canvas side empty on each side (default 0.14).

Input must be an 8-bit RGB or RGBA, non-interlaced PNG. The output is always
an 8-bit RGBA PNG.

Examples:
  # Default margin
  prepare_icon logo.png icon.png

  # Content fills the canvas as far as allowed (95% of the side)
  prepare_icon logo.png icon.png 0

  # Inspect what would be produced
  prepare_icon identify logo.png`,
	Args:              positionalArgs,
	PersistentPreRunE: setupLogging,
	RunE:              runPrepare,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logging.Error().Err(err).Msg("prepare_icon failed")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.prepare_icon.yaml)")
	rootCmd.PersistentFlags().String("log-level", logging.DefaultLevel.String(), "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every pipeline stage (same as --log-level debug)")
	rootCmd.PersistentFlags().Float64P("margin", "m", icon.DefaultMargin, "margin ratio used when the third argument is omitted")
	rootCmd.Flags().StringP("compression", "c", "best", "zlib level for the output (best|default|speed|none)")

	// Flags must come before the positional arguments so that a negative
	// margin such as -1.0 is not parsed as a flag.
	rootCmd.Flags().SetInterspersed(false)

	bindFlags()
}

func bindFlags() {
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("margin", rootCmd.PersistentFlags().Lookup("margin"))
	viper.BindPFlag("compression", rootCmd.Flags().Lookup("compression"))
}

// initConfig reads in the config file if one is set or present in $HOME.
// Environment variables are not consulted.
func initConfig() {
	configErr = nil
	configLoaded = false

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".prepare_icon")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
		return
	}
	configLoaded = true
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := viper.GetString("log-level")
	if viper.GetBool("verbose") {
		level = "debug"
	}
	if err := logging.SetLevel(level); err != nil {
		return &ArgumentError{Message: "bad --log-level", Err: err}
	}
	if configErr != nil {
		return configErr
	}
	if configLoaded {
		logging.Debug().Str("file", viper.ConfigFileUsed()).Msg("Using config file")
	}
	return nil
}

// positionalArgs accepts exactly an input, an output and an optional margin.
// Anything else prints the usage line to standard output.
func positionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(cmd.OutOrStdout(), usage)
		return &ArgumentError{Message: fmt.Sprintf("expected 2 or 3 arguments, got %d", len(args))}
	}
	return nil
}

// resolveMargin returns the positional margin if given, else the configured
// one.
func resolveMargin(args []string) (float64, error) {
	if len(args) < 3 {
		return viper.GetFloat64("margin"), nil
	}
	margin, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return 0, &ArgumentError{Message: fmt.Sprintf("invalid margin_ratio %q", args[2]), Err: err}
	}
	return margin, nil
}

func runPrepare(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	margin, err := resolveMargin(args)
	if err != nil {
		return err
	}
	compression, err := png.ParseCompressionLevel(viper.GetString("compression"))
	if err != nil {
		return &ArgumentError{Message: "bad --compression", Err: err}
	}

	preparer := prepare.NewPreparer(&icon.Options{
		Margin:      margin,
		Compression: compression,
	})

	result, err := preparer.Prepare(input, output)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Prepared icon: %s (%dx%d)\n", output, result.Width, result.Height)
	return nil
}
