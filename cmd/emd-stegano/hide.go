package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/payload"
	"github.com/ironsheep/emd-stegano/internal/stego"
)

func (a *app) hideCommand() *cli.Command {
	var (
		g        globalFlags
		n        int
		input    string
		text     string
		file     string
		output   string
		diffMap  string
		compress bool
	)
	return &cli.Command{
		Name:    "hide",
		Summary: "Hide text or a file in an image",
		Usage:   "emd-stegano hide -n N -i IMAGE (-t TEXT | -f FILE) [flags]",
		Description: "Hide a secret in a grayscale copy of IMAGE.\n\n" +
			"The stego image is written in the format of its extension. JPEG and GIF\n" +
			"change sample values on save and destroy the hidden data; use PNG, BMP or TIFF.",
		Examples: []cli.Example{
			{Description: "Hide a message with groups of 2 pixels", Command: "emd-stegano hide -n 2 -i cover.png -t 'Hello World'"},
			{Description: "Hide a compressed file", Command: "emd-stegano hide -n 3 -i cover.png -f notes.txt --compress -o out.png"},
		},
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("hide", pflag.ContinueOnError)
			fs.IntVarP(&n, "dimension", "n", 2, "group size: each base-(2n+1) digit is carried by n pixels")
			fs.StringVarP(&input, "input-image", "i", "", "cover image (required)")
			fs.StringVarP(&text, "text", "t", "", "message to hide")
			fs.StringVarP(&file, "file", "f", "", "file whose contents to hide")
			fs.StringVarP(&output, "output-image", "o", "", "stego image path (default <name>_EMD<ext>)")
			fs.BoolVar(&compress, "compress", false, "zstd-compress the payload before hiding")
			fs.StringVar(&diffMap, "diff-map", "", "also write an image with every modified pixel in white")
			g.register(fs)
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if input == "" {
				return cli.Usagef("--input-image is required")
			}
			s, err := a.open(&g)
			if err != nil {
				return err
			}

			secret, err := payload.Read(payload.Source{Text: text, File: file})
			if err != nil {
				return err
			}
			s.logger.Debug("payload", "bytes", len(secret), "bits", len(secret)*8, "n", n, "base", 2*n+1)

			report, err := stego.Hide(stego.HideRequest{
				Input:    input,
				Output:   output,
				Suffix:   s.cfg.OutputSuffix,
				N:        n,
				Secret:   secret,
				Compress: compress,
				DiffMap:  diffMap,
				Trace:    s.trace("hide"),
			})
			if err != nil {
				return err
			}

			stats := report.Stats
			s.logger.Debug("hide stats",
				"digits", stats.Digits,
				"unchanged", stats.Unchanged,
				"adjusted", stats.Adjusted,
				"boundary_fallbacks", stats.BoundaryFallbacks,
			)

			if report.Converted {
				s.out.Warn("Image has been converted to grayscale")
			}
			s.out.Success("Data of %d bytes hidden with %d digits of base %d and %d bits",
				stats.Bytes, stats.Digits, report.Params.Base, stats.Bits)
			s.out.Success("Message hidden in %s", report.Output)
			s.out.Plain("   %d of %d pixels changed, max delta %d, PSNR %s dB",
				report.Distortion.PixelsChanged, report.Distortion.TotalPixels,
				report.Distortion.MaxDelta, report.PSNR)
			if stats.BoundaryFallbacks > 0 {
				s.out.Warn("%d saturated pixels forced a move in the opposite direction", stats.BoundaryFallbacks)
			}
			if report.Compressed {
				s.out.Plain("   compressed %d -> %d bytes; extract with --length %d --decompress",
					len(secret), report.Length, report.Length)
			}
			if report.DiffMap != "" {
				s.out.Success("Difference map saved in %s", report.DiffMap)
			}
			if report.Lossy {
				s.out.Warn("%s is a lossy format: the hidden data will not survive", report.Output)
			}
			return nil
		},
	}
}
