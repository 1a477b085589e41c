// Package app wires configuration, preferences, the registry client and the
// search controller into the running TUI.
package app
