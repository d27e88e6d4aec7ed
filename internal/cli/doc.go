// Package cli implements the triage command tree with cobra.
//
// Running triage with no subcommand opens the dashboard. The one-shot
// commands (snapshot, export) share the same collector, store and config
// wiring so their output matches what the dashboard shows and exports.
package cli
