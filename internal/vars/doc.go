// Package vars loads and merges interpolation variables from multiple
// sources for the subtext CLI.
//
// Precedence (highest to lowest):
//  1. --set key=value flags
//  2. Variable files (--vars, JSON or TOML by extension)
//  3. Dotenv files (--env-file)
//  4. Process environment (--env)
package vars
