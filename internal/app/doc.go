// Package app wires application dependencies for the CLI.
//
// It builds the signal source, session agent, insights client and loggers
// from a loaded config.Config, exposing them via the Wire struct for
// commands to use.
package app
