// Command emd-stegano hides data in grayscale images with Exploiting
// Modification Direction steganography, extracts it again, and searches
// images for hidden text when the group size is unknown.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/ironsheep/emd-stegano/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	if len(args) > 0 && args[0] == "--version" {
		args = []string{"version"}
	}
	err := a.root().Execute(ctx, args)
	if err == nil {
		return cli.ExitOK
	}

	cli.NewPrinter(stderr).Fail("%v", err)
	return cli.ExitCode(err)
}
