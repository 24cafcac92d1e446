package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/aiff"
	"github.com/spf13/cobra"

	"github.com/oniani/wavepcm"
)

var toaiffCmd = &cobra.Command{
	Use:   "toaiff <file>",
	Short: "Convert a WAVE PCM file to AIFF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		return runToAiff(args[0], out)
	},
}

func init() {
	rootCmd.AddCommand(toaiffCmd)

	toaiffCmd.Flags().String("out", "", "output file path (default: input path with .aif extension)")
}

func runToAiff(inPath, outPath string) error {
	if outPath == "" {
		outPath = inPath[:len(inPath)-len(filepath.Ext(inPath))] + ".aif"
	}

	format, err := wavepcm.ReadFile(inPath)
	if err != nil {
		return err
	}

	err = format.Check()
	if err != nil {
		return fmt.Errorf("%s is not a valid WAVE PCM file: %w", inPath, err)
	}

	buf, err := format.IntBuffer()
	if err != nil {
		return err
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	enc := aiff.NewEncoder(outFile,
		int(format.SampleRate()),
		int(format.BitsPerSample()),
		int(format.NumChannels()))

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write aiff data: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	return nil
}
