// Package main hosts the wordfreq CLI entrypoint and command graph.
//
// The Cobra-based command tree maps terminal invocations onto the counting
// pipeline and configuration utilities. The root command runs a scan and
// prints the report to stdout; diagnostics always go to stderr so the report
// stays pipeable. The config subcommands scaffold, validate, and display the
// optional TOML configuration.
//
// Keep this package lean: the counting semantics live in the internal
// packages, and commands here should stay limited to flag plumbing, logger
// construction, and output selection.
package main
