package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func testTree(ran *[]string) *Command {
	var count int
	var name string
	hide := &Command{
		Name:    "hide",
		Summary: "Hide a secret",
		Flags: func() *pflag.FlagSet {
			fs := pflag.NewFlagSet("hide", pflag.ContinueOnError)
			fs.IntVarP(&count, "dimension", "n", 2, "group size")
			fs.StringVar(&name, "input-image", "", "cover image")
			return fs
		},
		Run: func(ctx context.Context, args []string) error {
			*ran = append(*ran, "hide", name, strings.Join(args, ","))
			return nil
		},
	}
	info := &Command{
		Name:    "info",
		Summary: "Describe an image",
		Run: func(ctx context.Context, args []string) error {
			*ran = append(*ran, "info")
			return nil
		},
	}
	return &Command{
		Name:        "emd-stegano",
		Subcommands: []*Command{hide, info},
		Stderr:      &bytes.Buffer{},
	}
}

func TestExecute_Dispatch(t *testing.T) {
	var ran []string
	root := testTree(&ran)

	err := root.Execute(context.Background(), []string{"hide", "--input-image", "a.png", "-n", "3", "extra"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := []string{"hide", "a.png", "extra"}
	if strings.Join(ran, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", ran, want)
	}
}

func TestExecute_UsageErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"no subcommand", nil, "subcommand required"},
		{"flag without subcommand", []string{"--verbose"}, "subcommand required"},
		{"unknown command", []string{"bogus"}, "unknown command"},
		{"typo", []string{"hdie"}, `did you mean "hide"`},
		{"unknown flag", []string{"hide", "--input-imag", "x"}, "did you mean --input-image"},
		{"bad value", []string{"hide", "-n", "two"}, "invalid argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ran []string
			err := testTree(&ran).Execute(context.Background(), tt.args)
			if !errors.Is(err, ErrUsage) {
				t.Fatalf("got %v, want ErrUsage", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not contain %q", err, tt.contains)
			}
			if len(ran) != 0 {
				t.Errorf("command ran: %v", ran)
			}
		})
	}
}

func TestExecute_Help(t *testing.T) {
	var ran []string
	root := testTree(&ran)
	help := root.Stderr.(*bytes.Buffer)

	if err := root.Execute(context.Background(), []string{"--help"}); err != nil {
		t.Fatalf("help returned error: %v", err)
	}
	out := help.String()
	for _, want := range []string{"Usage:", "hide", "Hide a secret", "info"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}

	help.Reset()
	if err := root.Execute(context.Background(), []string{"hide", "-h"}); err != nil {
		t.Fatalf("subcommand help returned error: %v", err)
	}
	if !strings.Contains(help.String(), "--dimension") {
		t.Errorf("subcommand help missing flags:\n%s", help.String())
	}
	if !strings.Contains(help.String(), "emd-stegano hide") {
		t.Errorf("subcommand help missing full name:\n%s", help.String())
	}
	if len(ran) != 0 {
		t.Errorf("help ran a command: %v", ran)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"hide", "hide", 0},
		{"hdie", "hide", 2},
		{"extrac", "extract", 1},
		{"", "abc", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
