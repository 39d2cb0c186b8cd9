package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/stego"
)

func (a *app) infoCommand() *cli.Command {
	var (
		g      globalFlags
		input  string
		maxN   int
		asJSON bool
	)
	return &cli.Command{
		Name:    "info",
		Summary: "Show image metadata and hiding capacity",
		Usage:   "emd-stegano info -i IMAGE [flags]",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("info", pflag.ContinueOnError)
			fs.StringVarP(&input, "input-image", "i", "", "image file to inspect (required)")
			fs.IntVar(&maxN, "max-n", stego.DefaultInfoMaxN, "largest group size in the capacity table")
			fs.BoolVar(&asJSON, "json", false, "print the report as JSON")
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

			report, err := stego.Info(input, maxN)
			if err != nil {
				return err
			}
			s.logger.Debug("image loaded", "path", input, "format", report.Format, "color_model", report.ColorModel)

			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			s.out.Success("%s: %dx%d %s (%s), %d pixels, %d bytes on disk",
				input, report.Width, report.Height, report.Format, report.ColorModel, report.Pixels, report.FileSizeBytes)
			if !report.Grayscale {
				s.out.Warn("Image not in grayscale -> will be converted")
			}
			if report.Boundary.Black > 0 || report.Boundary.White > 0 {
				s.out.Warn("%d samples at 0 and %d at 255 can only move one way",
					report.Boundary.Black, report.Boundary.White)
			}

			tw := tabwriter.NewWriter(s.out.Writer(), 2, 0, 3, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "N\tBASE\tBITS/DIGIT\tGROUPS\tBYTES\t")
			for _, row := range report.Capacity {
				fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t\n", row.N, row.Base, row.BitsPerDigit, row.Groups, row.Bytes)
			}
			return tw.Flush()
		},
	}
}
