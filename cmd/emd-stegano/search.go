package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/stego"
)

func (a *app) searchCommand() *cli.Command {
	var (
		g         globalFlags
		length    int
		input     string
		minN      int
		maxN      int
		tolerance float64
		workers   int
		asJSON    bool
	)
	return &cli.Command{
		Name:    "search",
		Summary: "Search for hidden text without knowing the group size",
		Usage:   "emd-stegano search -l LENGTH -i IMAGE [flags]",
		Description: "Try every group size in [min-n, max-n), extract as many bytes as the\n" +
			"image can carry, and report each group size whose stream holds LENGTH\n" +
			"bytes of mostly printable text. Text that does not start on a byte\n" +
			"boundary is found by shifting the stream by 0 to 7 bits.",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("search", pflag.ContinueOnError)
			fs.IntVarP(&length, "length", "l", 0, "length in bytes of the text window (required)")
			fs.StringVarP(&input, "input-image", "i", "", "image to search (required)")
			fs.IntVar(&minN, "min-n", 0, "first group size (default from config, 2)")
			fs.IntVar(&maxN, "max-n", 0, "exclusive upper group size (default from config, 20)")
			fs.Float64Var(&tolerance, "tolerance", 0, "printable fraction required (default from config, 0.90)")
			fs.IntVar(&workers, "workers", 0, "group sizes scanned in parallel (default from config)")
			fs.BoolVar(&asJSON, "json", false, "print the results as JSON")
			g.register(fs)
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			if input == "" {
				return cli.Usagef("--input-image is required")
			}
			if length < 1 {
				return cli.Usagef("--length is required and must be positive")
			}
			s, err := a.open(&g)
			if err != nil {
				return err
			}

			req := stego.SearchRequest{
				Input:     input,
				Length:    length,
				MinN:      orDefault(minN, s.cfg.Search.MinGroupSize),
				MaxN:      orDefault(maxN, s.cfg.Search.MaxGroupSize),
				Tolerance: s.cfg.Search.Tolerance,
				Workers:   orDefault(workers, s.cfg.Search.Workers),
			}
			if tolerance != 0 {
				req.Tolerance = tolerance
			}
			if req.Tolerance <= 0 || req.Tolerance > 1 {
				return cli.Usagef("--tolerance must be in (0, 1], got %g", req.Tolerance)
			}
			s.logger.Debug("searching", "min_n", req.MinN, "max_n", req.MaxN, "tolerance", req.Tolerance, "workers", req.Workers)

			report, err := stego.Search(ctx, req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				if report.Converted {
					s.out.Warn("Image has been converted to grayscale")
				}
				for _, r := range report.Results {
					s.out.Success("Found = %q with n = %d, offset = %d, bit_shift = %d",
						r.Match.Bytes, r.Params.N, r.Match.Offset, r.Match.BitShift)
				}
			}

			if len(report.Results) == 0 && !asJSON {
				s.out.Fail("No printable text of %d bytes for n in [%d, %d)", length, req.MinN, req.MaxN)
			}
			return nil
		},
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
