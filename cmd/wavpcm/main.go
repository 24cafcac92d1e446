// Command wavpcm inspects, generates, and converts WAVE PCM files.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wavpcm",
	Short: "WAVE PCM toolbox",
	Long: `wavpcm works with uncompressed WAVE PCM files in their canonical
minimal layout (a 44-byte header followed by raw sample data).

Commands:
  - info: decode and validate a file, then print its header fields
  - gen: generate a sine wave file
  - resample: change a file's sample rate
  - toaiff: convert a file to AIFF`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
