// Package dashboard implements the interactive TUI for a single host's
// telemetry snapshot.
//
// # Architecture
//
// The package uses the Bubble Tea framework (Model-Update-View). The Model
// never owns the snapshot: all state lives in a controller.Controller, and the
// Model mirrors the latest controller.ViewState it receives through
// Subscribe.
//
// # Message Flow
//
//  1. Init starts the controller (the initial fetch) and begins waiting for state
//  2. Keys call controller operations (refresh, export, panel selection)
//  3. Every controller transition arrives as a stateMsg
//  4. View renders the mirrored state: header, tabs, panel, toast, footer
//
// # Keyboard Shortcuts
//
//	r             Refresh
//	e             Export the current snapshot
//	1-6           Jump to a panel
//	tab / right   Next panel
//	shift+tab     Previous panel
//	?             Toggle help overlay
//	q / Ctrl+C    Quit
package dashboard
