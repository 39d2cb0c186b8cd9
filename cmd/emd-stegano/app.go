package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/config"
	"github.com/ironsheep/emd-stegano/internal/emd"
)

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
}

// globalFlags are accepted by every command.
type globalFlags struct {
	configPath string
	verbosity  int
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.configPath, "config", "", "YAML config file (default $"+config.EnvConfig+")")
	fs.CountVarP(&g.verbosity, "verbose", "v", "debug logging; repeat (-vv) to trace every carrier group")
}

// session is the per-invocation state shared by command handlers.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	out       *cli.Printer
	verbosity int
}

func (a *app) open(g *globalFlags) (*session, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return nil, err
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:       cfg,
		logger:    cli.NewLogger(a.stderr, cli.LevelFor(level, g.verbosity)),
		out:       cli.NewPrinter(a.stdout),
		verbosity: g.verbosity,
	}, nil
}

// trace returns a group callback logging every carrier group at debug level
// when -vv was given, or nil.
func (s *session) trace(op string) func(emd.GroupEvent) {
	if s.verbosity < cli.VerbosityTrace {
		return nil
	}
	return func(ev emd.GroupEvent) {
		s.logger.Debug(op+" group",
			"index", ev.Index,
			"x", ev.Origin.X,
			"y", ev.Origin.Y,
			"digit", ev.Digit,
			"before", fmt.Sprint(ev.Before),
			"after", fmt.Sprint(ev.After),
			"fallbacks", ev.Fallbacks,
		)
	}
}

func (a *app) root() *cli.Command {
	return &cli.Command{
		Name: "emd-stegano",
		Description: "emd-stegano hides data in images with EMD (Exploiting Modification Direction)\n" +
			"steganography, or reads hidden data back out.\n\n" +
			"Every secret digit in base 2n+1 is carried by a group of n grayscale pixels,\n" +
			"and usually a single pixel of a group changes by one level. Pixels at 0 or\n" +
			"255 can force a second step.",
		Subcommands: []*cli.Command{
			a.infoCommand(),
			a.hideCommand(),
			a.extractCommand(),
			a.searchCommand(),
			a.serveCommand(),
			a.versionCommand(),
		},
		Stderr: a.stderr,
	}
}
