// Package config loads emd-stegano settings.
//
// Configuration comes from at most one YAML file, chosen by:
//   - the --config flag, or
//   - the EMD_STEGANO_CONFIG environment variable
//
// Without either, built-in defaults apply. EMD_STEGANO_LOG_LEVEL overrides the
// file's log_level; command-line flags override both. Unknown keys in the file
// are rejected so a typo never silently falls back to a default.
//
// Example file:
//
//	log_level: debug
//	output_suffix: _stego
//	search:
//	  min_group_size: 2
//	  max_group_size: 12
//	  tolerance: 0.85
//	  workers: 4
package config
