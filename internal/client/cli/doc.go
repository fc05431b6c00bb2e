// Package cli provides the notevault command-line client.
//
// It wires configuration, local storage and the VaultService, and exposes the
// flows either as one-shot subcommands (`notevault note-add`) or through an
// interactive REPL when no subcommand is given.
//
// Commands:
//   - register, link-request, link-verify, code-login, logout
//   - unlock, change-passphrase
//   - note-add, note-list
//   - status
//
// See App.Run and runREPL.
package cli
