package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oniani/wavepcm"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print the header fields of a WAVE PCM file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(args[0], os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(path string, out io.Writer) error {
	format, err := wavepcm.ReadFile(path)
	if err != nil {
		return err
	}

	err = format.Check()
	if err != nil {
		return fmt.Errorf("%s is not a valid WAVE PCM file: %w", path, err)
	}

	fmt.Fprintln(out, "THE WAVE PCM FORMAT HAS BEEN VALIDATED!")
	fmt.Fprintln(out)
	fmt.Fprint(out, format.Summary())

	return nil
}
