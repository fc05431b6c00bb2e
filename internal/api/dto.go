// Package api is the transport-neutral boundary of the server: request and
// response shapes, the Facade that turns them into service calls, and the
// mapping of internal errors onto the public error kinds.
//
// Byte fields are []byte and therefore travel as standard base64 in JSON.
// Session tokens are already URL-safe base64 strings.
package api

import "time"

type RegisterRequest struct {
	Username                  string `json:"username"`
	Email                     string `json:"email,omitempty"`
	EnableTOTP                bool   `json:"enableTotp,omitempty"`
	PassphraseVerifier        []byte `json:"passphraseVerifier"`
	PassphraseVerifierSalt    []byte `json:"passphraseVerifierSalt"`
	PassphraseVerifierVersion int    `json:"passphraseVerifierVersion"`
}

type RegisterResponse struct {
	AccountID    string `json:"accountId"`
	E2EESalt     []byte `json:"e2eeSalt"`
	SessionToken string `json:"sessionToken"`
	TOTPSecret   string `json:"totpSecret,omitempty"`
	TOTPURI      string `json:"totpUri,omitempty"`
}

type RequestLoginLinkRequest struct {
	Email string `json:"email"`
}

type RequestLoginLinkResponse struct {
	ExpiresAt time.Time `json:"expiresAt"`
}

// VerifyLoginLinkRequest carries either Email and Token, or the signed Link
// token from the emailed URL.
type VerifyLoginLinkRequest struct {
	Email string `json:"email,omitempty"`
	Token string `json:"token,omitempty"`
	Link  string `json:"link,omitempty"`
}

type LoginWithCodeRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

type LoginResponse struct {
	AccountID                 string `json:"accountId"`
	Username                  string `json:"username"`
	E2EESalt                  []byte `json:"e2eeSalt"`
	PassphraseVerifierSalt    []byte `json:"passphraseVerifierSalt"`
	PassphraseVerifierVersion int    `json:"passphraseVerifierVersion"`
	SessionToken              string `json:"sessionToken"`
}

// SessionRequest is the body of operations that need nothing but a session.
type SessionRequest struct {
	SessionToken string `json:"sessionToken"`
}

type OKResponse struct {
	OK           bool   `json:"ok"`
	SessionToken string `json:"sessionToken,omitempty"`
}

type StoreMasterWrappedDEKRequest struct {
	SessionToken    string `json:"sessionToken"`
	WrappedDEK      []byte `json:"wrappedDek"`
	WrapNonce       []byte `json:"wrapNonce"`
	Version         int    `json:"version"`
	PassphraseProof []byte `json:"passphraseProof"`
}

type WrappedDEKResponse struct {
	WrappedDEK   []byte `json:"wrappedDek"`
	WrapNonce    []byte `json:"wrapNonce"`
	Version      int    `json:"version"`
	SessionToken string `json:"sessionToken"`
}

type UpdatePassphraseRequest struct {
	SessionToken        string `json:"sessionToken"`
	NewE2EESalt         []byte `json:"newE2eeSalt"`
	NewWrappedDEK       []byte `json:"newWrappedDek"`
	NewWrapNonce        []byte `json:"newWrapNonce"`
	Version             int    `json:"version"`
	PassphraseProof     []byte `json:"passphraseProof"`
	NextVerifier        []byte `json:"nextVerifier"`
	NextVerifierSalt    []byte `json:"nextVerifierSalt"`
	NextVerifierVersion int    `json:"nextVerifierVersion"`
}

type RegisterDeviceRequest struct {
	SessionToken string `json:"sessionToken"`
	DeviceID     string `json:"deviceId"`
	WrappedDEK   []byte `json:"wrappedDek"`
	WrapNonce    []byte `json:"wrapNonce"`
	Version      int    `json:"version"`
}

type RegisterDeviceResponse struct {
	DeviceID     string `json:"deviceId"`
	SessionToken string `json:"sessionToken"`
}

type FetchWrappedDEKForDeviceRequest struct {
	SessionToken string `json:"sessionToken"`
	DeviceID     string `json:"deviceId"`
}

type CreateNoteRequest struct {
	SessionToken string    `json:"sessionToken"`
	ClientNoteID string    `json:"clientNoteId"`
	Ciphertext   []byte    `json:"ciphertext"`
	Nonce        []byte    `json:"nonce"`
	AAD          []byte    `json:"aad"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Note struct {
	ID         string    `json:"id"`
	Ciphertext []byte    `json:"ciphertext"`
	Nonce      []byte    `json:"nonce"`
	AAD        []byte    `json:"aad"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ListNotesResponse struct {
	Notes        []Note `json:"notes"`
	SessionToken string `json:"sessionToken"`
}

type UpdatePreferencesRequest struct {
	SessionToken string `json:"sessionToken"`
	AuthMethod   string `json:"authMethod"`
}

type PreferencesResponse struct {
	AuthMethod   string `json:"authMethod"`
	TOTPEnabled  bool   `json:"totpEnabled"`
	SessionToken string `json:"sessionToken"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

// Authenticated is implemented by every request that needs a session.
// Transports use it to fill the token from metadata or headers.
type Authenticated interface {
	SessionTokenRef() *string
}

func (r *SessionRequest) SessionTokenRef() *string                  { return &r.SessionToken }
func (r *StoreMasterWrappedDEKRequest) SessionTokenRef() *string    { return &r.SessionToken }
func (r *UpdatePassphraseRequest) SessionTokenRef() *string         { return &r.SessionToken }
func (r *RegisterDeviceRequest) SessionTokenRef() *string           { return &r.SessionToken }
func (r *FetchWrappedDEKForDeviceRequest) SessionTokenRef() *string { return &r.SessionToken }
func (r *CreateNoteRequest) SessionTokenRef() *string               { return &r.SessionToken }
func (r *UpdatePreferencesRequest) SessionTokenRef() *string        { return &r.SessionToken }

// Reissued is implemented by responses that echo the session token, which
// differs from the presented one after a rotation.
type Reissued interface {
	ReissuedToken() string
}

func (r *OKResponse) ReissuedToken() string             { return r.SessionToken }
func (r *WrappedDEKResponse) ReissuedToken() string     { return r.SessionToken }
func (r *RegisterDeviceResponse) ReissuedToken() string { return r.SessionToken }
func (r *ListNotesResponse) ReissuedToken() string      { return r.SessionToken }
func (r *PreferencesResponse) ReissuedToken() string    { return r.SessionToken }
