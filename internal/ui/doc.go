// Package ui provides terminal UI components for triage's CLI output.
//
// The package includes a spinner for one-shot commands, table helpers shared
// with the dashboard, a branded header, and a plain-text report renderer for
// `triage snapshot`, all styled with Lip Gloss.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//
// Use DisableColors() to switch to monochrome output (for piped output).
//
// # Spinner Usage
//
//	s := ui.NewSpinner("Collecting metrics", os.Stderr)
//	s.Start()
//	// ... do work ...
//	s.Success() // or s.Fail()
package ui
