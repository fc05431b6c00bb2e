// Package metadata stores the client's small key/value state: who is signed
// in, the current session token and the account salts returned at login.
package metadata
