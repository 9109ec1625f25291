package cmd

import (
	"fmt"
	"os"

	"github.com/kiesman99/prepare-icon/internal/oops"
	"github.com/kiesman99/prepare-icon/internal/png"
	"github.com/kiesman99/prepare-icon/internal/prepare"
	"github.com/kiesman99/prepare-icon/pkg/icon"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <file>",
	Short: "Inspect a PNG and show the icon geometry it would produce",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return &prepare.IOError{Op: "read", Path: path, Err: err}
	}

	hdr, err := png.DecodeHeader(data)
	if err != nil {
		return oops.New(err, "parsing %s", path)
	}
	img, err := icon.NewProcessor(nil).DecodeImage(data)
	if err != nil {
		return oops.New(err, "decoding %s", path)
	}

	margin := viper.GetFloat64("margin")
	box := icon.AlphaBounds(img)
	side := icon.CanvasSide(box.Width(), box.Height(), margin)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", hdr.Width, hdr.Height)
	fmt.Fprintf(out, "Color type:  %s (%d)\n", hdr.ColorModel(), hdr.ColorType)
	fmt.Fprintf(out, "Bit depth:   %d\n", hdr.BitDepth)
	fmt.Fprintf(out, "File size:   %d bytes\n", len(data))
	fmt.Fprintf(out, "Content:     %s (%d x %d)\n", box, box.Width(), box.Height())
	fmt.Fprintf(out, "Icon canvas: %d x %d (margin %g)\n", side, side, margin)
	return nil
}
