package main

import (
	"fmt"
	"log"
	"math"

	"github.com/go-audio/audio"
	"github.com/spf13/cobra"

	"github.com/oniani/wavepcm"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a 16-bit mono sine wave file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		frequency, err := cmd.Flags().GetFloat64("frequency")
		if err != nil {
			return err
		}

		length, err := cmd.Flags().GetFloat64("length")
		if err != nil {
			return err
		}

		rate, err := cmd.Flags().GetInt("rate")
		if err != nil {
			return err
		}

		log.Printf("generating a %f sec sine wav at %f hz", length, frequency)

		return runGen(output, frequency, length, rate)
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().String("output", "output.wav", "filename to write to")
	genCmd.Flags().Float64("frequency", 440, "frequency in hertz to generate")
	genCmd.Flags().Float64("length", 5, "length in seconds of output file")
	genCmd.Flags().Int("rate", 48000, "sample rate in hertz")
}

func runGen(output string, frequency, length float64, rate int) error {
	if rate <= 0 {
		return fmt.Errorf("invalid sample rate %d", rate)
	}

	numSamples := int(float64(rate) * length)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, numSamples),
	}

	for i := range buf.Data {
		v := math.Sin(float64(i) / float64(rate) * frequency * 2 * math.Pi)
		buf.Data[i] = int(math.Round(v * 32767))
	}

	format, err := wavepcm.FromIntBuffer(buf, 16)
	if err != nil {
		return err
	}

	return format.WriteFile(output)
}
