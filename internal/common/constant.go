// Package common contains shared constants and sentinel errors used across
// notevault components.
package common

// SessionTokenHeaderName is the gRPC/HTTP metadata key used to carry the
// session token on outbound requests.
const SessionTokenHeaderName = "session_token"

// RotatedSessionTokenHeaderName is the response header/trailer that carries a
// replacement token when the server rotated the session.
const RotatedSessionTokenHeaderName = "rotated_session_token"
