// Package config loads runtime settings and rendering variations.
//
// Settings come from viper: defaults, then an optional config file, then
// RELGRAPH_* environment variables, then values the caller sets explicitly
// (command-line flags). Variations come from YAML (.yaml, .yml) or HCL
// (.hcl) preset files, or from DefaultVariations.
package config
