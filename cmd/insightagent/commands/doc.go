// Package commands defines the insightagent CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - collect     Run one signal collection and print the payload
//   - seal        Encrypt a payload (collected, or read with --in) into an envelope
//   - derive-key  Print the hex key derived from the configured credentials
//   - send        Collect, seal and forward to the intelligence service
//   - version     Print the SDK version name and code
//
// # Configuration
//
// Settings come from defaults, then the --config YAML file, then
// INSIGHTAGENT_* environment variables, then flags. Output is JSON or YAML
// (--format) on stdout, or written atomically to --out.
//
// # Implementation
//
// The root command loads settings and builds the dependency graph (signal
// source, session agent, insights client) before any subcommand runs.
package commands
