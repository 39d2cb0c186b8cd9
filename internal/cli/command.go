package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// ErrUsage marks errors caused by how the command was invoked: unknown
// commands, bad flags, missing required values.
var ErrUsage = errors.New("usage error")

// Usagef formats a usage error that matches ErrUsage.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Command is either a group that dispatches on its first argument to one of
// Subcommands, or a leaf that parses Flags and calls Run.
type Command struct {
	Name    string
	Summary string // one line, listed in the parent's help

	// Description replaces Summary at the top of the command's own help.
	Description string

	// Usage defaults to "<path> [flags]" or "<path> <command> [flags]".
	Usage    string
	Examples []Example

	// Flags builds a fresh flag set; it is called for parsing and again for
	// help. Nil means the command takes no flags.
	Flags func() *pflag.FlagSet

	Subcommands []*Command

	// Run is required on leaf commands and receives the positional args.
	Run func(ctx context.Context, args []string) error

	// Stderr receives help output. Unset commands inherit it from their
	// parent, and the root falls back to os.Stderr.
	Stderr io.Writer

	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	Description string
	Command     string
}

// Execute parses args and dispatches to the matching subcommand or Run.
func (c *Command) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.stderr())
		return nil
	}
	if len(c.Subcommands) > 0 {
		return c.dispatch(ctx, args)
	}

	if c.Flags != nil {
		fs := c.Flags()
		fs.SetOutput(io.Discard)
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				c.PrintHelp(c.stderr())
				return nil
			}
			return c.flagError(args, err)
		}
		args = fs.Args()
	}
	return c.Run(ctx, args)
}

func (c *Command) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		c.PrintHelp(c.stderr())
		return Usagef("subcommand required")
	}

	name := args[0]
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			sub.parent = c
			return sub.Execute(ctx, args[1:])
		}
	}

	hint := ""
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		hint = fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return Usagef("unknown command %q%s\n\nRun '%s --help' for usage.", name, hint, c.fullName())
}

func (c *Command) flagError(args []string, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown shorthand flag") {
		if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
			msg += fmt.Sprintf(" (did you mean %s?)", suggestion)
		}
	}
	return Usagef("%s\n\nRun '%s --help' for usage.", msg, c.fullName())
}

// PrintHelp writes the command's description, usage, subcommands, flags and
// examples to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	about := c.Description
	if about == "" {
		about = c.Summary
	}
	if about != "" {
		fmt.Fprintf(w, "%s\n\n", about)
	}

	usage := c.Usage
	if usage == "" {
		usage = name + " [flags]"
		if len(c.Subcommands) > 0 {
			usage = name + " <command> [flags]"
		}
	}
	fmt.Fprintf(w, "Usage:\n  %s\n", usage)

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}

	if c.Flags != nil {
		var flags strings.Builder
		fs := c.Flags()
		fs.SetOutput(&flags)
		fs.PrintDefaults()
		if flags.Len() > 0 {
			fmt.Fprintf(w, "\nFlags:\n%s", flags.String())
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, ex := range c.Examples {
			fmt.Fprintf(w, "  # %s\n  %s\n\n", ex.Description, ex.Command)
		}
	}
}

func (c *Command) stderr() io.Writer {
	for cmd := c; cmd != nil; cmd = cmd.parent {
		if cmd.Stderr != nil {
			return cmd.Stderr
		}
	}
	return os.Stderr
}

// fullName returns the command path, e.g. "emd-stegano hide".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
