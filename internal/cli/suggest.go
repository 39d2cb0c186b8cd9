package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestCommand returns the closest subcommand name within an edit
// distance of 3, or "".
func suggestCommand(unknown string, commands []*Command) string {
	bestName := ""
	bestDistance := 4

	for _, command := range commands {
		if d := levenshtein(unknown, command.Name); d < bestDistance {
			bestDistance = d
			bestName = command.Name
		}
	}
	return bestName
}

// suggestFlag finds the first long flag in args that flagSet does not define
// and returns the closest defined one as "--name", or "".
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") || arg == "--" {
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if i := strings.IndexByte(name, '='); i >= 0 {
			name = name[:i]
		}
		if flagSet.Lookup(name) != nil {
			continue
		}

		best := ""
		bestDistance := 3
		flagSet.VisitAll(func(f *pflag.Flag) {
			if d := levenshtein(name, f.Name); d < bestDistance {
				bestDistance = d
				best = f.Name
			}
		})
		if best != "" {
			return "--" + best
		}
		return ""
	}
	return ""
}

func levenshtein(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
