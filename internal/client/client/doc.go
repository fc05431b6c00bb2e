// Package client contains the client-side building blocks for notevault.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) that
//     mirrors every server operation using the api request and response
//     types.
//  2. A gRPC implementation (see GRPCClient) over the generated
//     notevault.v1.Vault client. It converts between api types and protobuf
//     messages, attaches the session token as metadata, picks up rotated
//     tokens and maps gRPC status codes to the common sentinel errors.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) that opens
//     the sqlite database and applies the embedded goose migrations.
//
// # Error Handling
//
// Server errors surface as common.ErrorConflict, common.ErrorValidation,
// common.ErrorUnauthorized, common.ErrorRateLimited, common.ErrorNotFound
// and common.ErrorCryptoFailure, matchable with errors.Is. Transport failures
// are ErrUnavailable.
package client
