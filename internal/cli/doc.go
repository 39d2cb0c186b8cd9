// Package cli provides the command framework for emd-stegano: a small
// pflag-based command tree, the structured logger, colored status lines, and
// the mapping from error kinds to process exit codes.
package cli
