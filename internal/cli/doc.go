// Package cli provides the terminal user interface components for fragmenta.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. Components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Compose
//
// [ComposeModel] is a multi-line editor over the draft slot. It restores the
// saved draft when opened, saves edits after a pause in typing when
// auto-save is enabled, and submits with ctrl+s. A failed submission leaves
// the text in place so it can be retried.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
