// Package doctor diagnoses why triage can't collect or export: config
// problems, missing collector commands and an unwritable data directory.
package doctor
