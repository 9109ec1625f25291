package main

import "github.com/kiesman99/prepare-icon/cmd"

func main() {
	cmd.Execute()
}
