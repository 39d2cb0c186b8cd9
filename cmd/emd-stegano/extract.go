package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/payload"
	"github.com/ironsheep/emd-stegano/internal/stego"
)

func (a *app) extractCommand() *cli.Command {
	var (
		g          globalFlags
		n          int
		length     int
		input      string
		output     string
		decompress bool
	)
	return &cli.Command{
		Name:    "extract",
		Summary: "Extract hidden bytes from an image",
		Usage:   "emd-stegano extract -n N -l LENGTH -i IMAGE [flags]",
		Description: "Extract LENGTH bytes hidden with group size N.\n\n" +
			"Nothing in the image records the length or group size; both must be\n" +
			"known. For an unknown group size, try 'emd-stegano search'.",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("extract", pflag.ContinueOnError)
			fs.IntVarP(&n, "dimension", "n", 2, "group size used when hiding")
			fs.IntVarP(&length, "length", "l", -1, "number of bytes to extract (required)")
			fs.StringVarP(&input, "input-image", "i", "", "stego image (required)")
			fs.StringVarP(&output, "output", "o", "", "write the bytes to this file instead of printing them")
			fs.BoolVar(&decompress, "decompress", false, "zstd-decompress the extracted bytes")
			g.register(fs)
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if input == "" {
				return cli.Usagef("--input-image is required")
			}
			if length < 0 {
				return cli.Usagef("--length is required")
			}
			s, err := a.open(&g)
			if err != nil {
				return err
			}

			report, err := stego.Extract(stego.ExtractRequest{
				Input:      input,
				N:          n,
				Length:     length,
				Decompress: decompress,
				Trace:      s.trace("extract"),
			})
			if err != nil {
				return err
			}
			s.logger.Debug("extracted", "n", report.Params.N, "base", report.Params.Base, "bytes", len(report.Data))

			if report.Converted {
				s.out.Warn("Image has been converted to grayscale")
			}
			if output != "" {
				if err := payload.WriteFile(output, report.Data); err != nil {
					return err
				}
				s.out.Success("File %s has been saved !", output)
				return nil
			}
			s.out.Success("EMD Data = %q", report.Data)
			return nil
		},
	}
}
