package main

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	soxr "github.com/zaf/resample"

	"github.com/oniani/wavepcm"
)

var resampleCmd = &cobra.Command{
	Use:   "resample <file>",
	Short: "Resample a 16-bit WAVE PCM file to a new sample rate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := cmd.Flags().GetInt("rate")
		if err != nil {
			return err
		}

		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}

		return runResample(args[0], out, rate)
	},
}

func init() {
	rootCmd.AddCommand(resampleCmd)

	resampleCmd.Flags().Int("rate", 48000, "target sample rate in Hz")
	resampleCmd.Flags().String("out", "out_resampled.wav", "output file path")
}

func runResample(inPath, outPath string, newRate int) error {
	if newRate <= 0 || newRate > 384000 {
		return fmt.Errorf("invalid sample rate %d", newRate)
	}

	format, err := wavepcm.ReadFile(inPath)
	if err != nil {
		return err
	}

	err = format.Check()
	if err != nil {
		return fmt.Errorf("%s is not a valid WAVE PCM file: %w", inPath, err)
	}

	if format.BitsPerSample() != 16 {
		return fmt.Errorf("only 16-bit files can be resampled, got %d bits", format.BitsPerSample())
	}

	slog.Info("resampling audio",
		"input_file", inPath,
		"from_rate", format.SampleRate(),
		"to_rate", newRate,
		"channels", format.NumChannels())

	resampled, err := resamplePCM(format.Data(), int(format.SampleRate()), newRate, int(format.NumChannels()))
	if err != nil {
		return err
	}

	outFormat, err := wavepcm.Encode(resampled, format.NumChannels(), uint32(newRate), format.BitsPerSample())
	if err != nil {
		return err
	}

	slog.Info("resampling complete",
		"output_file", outPath,
		"output_bytes", len(resampled),
		"output_frames", outFormat.NumFrames())

	return outFormat.WriteFile(outPath)
}

// resamplePCM pushes 16-bit interleaved samples through the SoXR binding.
func resamplePCM(data []byte, fromRate, toRate, channels int) ([]byte, error) {
	if fromRate == toRate {
		return data, nil
	}

	var buf bytes.Buffer

	resampler, err := soxr.New(&buf, float64(fromRate), float64(toRate), channels, soxr.I16, soxr.HighQ)
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	_, err = resampler.Write(data)
	if err != nil {
		resampler.Close()

		return nil, fmt.Errorf("failed to resample: %w", err)
	}

	err = resampler.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to close resampler: %w", err)
	}

	return buf.Bytes(), nil
}
