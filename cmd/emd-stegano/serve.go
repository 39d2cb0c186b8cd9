package main

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/ironsheep/emd-stegano/internal/cli"
	"github.com/ironsheep/emd-stegano/internal/server"
)

func (a *app) serveCommand() *cli.Command {
	var g globalFlags
	return &cli.Command{
		Name:    "serve",
		Summary: "Run as an MCP server on stdin/stdout",
		Description: "Serve the info, hide, extract and search operations as MCP tools.\n\n" +
			"The server communicates via MCP protocol over stdin/stdout; logs go to\n" +
			"stderr. Configure it in your MCP client.",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
			g.register(fs)
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			s, err := a.open(&g)
			if err != nil {
				return err
			}
			s.logger.Debug("MCP server starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)
			return server.New(s.cfg, s.logger, Version).Run(ctx, a.stdin, a.stdout)
		},
	}
}

func (a *app) versionCommand() *cli.Command {
	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Run: func(ctx context.Context, args []string) error {
			out := cli.NewPrinter(a.stdout)
			out.Plain("emd-stegano %s", Version)
			out.Plain("  Build time: %s", BuildTime)
			out.Plain("  Git commit: %s", GitCommit)
			return nil
		},
	}
}
