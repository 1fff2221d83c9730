// Package cli wires together the Cobra command tree for the subtext binary.
//
// It defines the root command and all subcommands (render, redact, version),
// binds flags, loads variable sources, invokes the interpolation library, and
// returns deterministic exit codes for scripting.
package cli
