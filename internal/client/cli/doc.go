// Package cli provides the interactive RateMyStore command-line client.
//
// It wires configuration, durable local storage, the API client, and an
// interactive REPL whose commands stand in for the application's screens:
// login/signup, the admin dashboard and user directory, the owner ratings
// dashboard, and password update. Screens are gated by the authenticated
// role; list screens share the generic collection pipeline (fetch → filter
// → sort) from internal/client/view.
//
// The REPL is started via App.Run(ctx), which restores any persisted
// session first and blocks until the user exits.
package cli
