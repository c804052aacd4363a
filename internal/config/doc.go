// Package config loads and validates wordfreq configuration.
//
// Configuration is optional: with no file present the defaults apply and the
// CLI flags are the whole surface. When a file exists (explicit --config
// path, ~/.config/wordfreq/config.toml, or a project-local wordfreq.toml) it
// seeds the scan and report settings that flags may then override.
//
// Sections:
//   - [scan]: tokenizer policy and read-buffer sizing
//   - [report]: ordering, case policy, and output format defaults
//   - [logging]: diagnostic level and format
package config
