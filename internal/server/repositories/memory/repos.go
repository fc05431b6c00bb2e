package memory

import (
	"bytes"
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/accounts"
)

func pairKey(a, b string) string { return a + "\x00" + b }

// accounts

type accountRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *accountRepo) Create(_ context.Context, a *models.Account) error {
	defer r.m.lock(r.db)()

	for _, existing := range r.m.st.accounts {
		if existing.Username == a.Username {
			return common.ErrorConflict
		}
		if a.Email != "" && existing.Email == a.Email {
			return common.ErrorConflict
		}
	}
	a.CreatedAt = time.Now()
	r.m.st.accounts[a.ID] = cloneAccount(*a)
	return nil
}

func (r *accountRepo) find(match func(a *models.Account) bool) (*models.Account, error) {
	defer r.m.lock(r.db)()

	for _, a := range r.m.st.accounts {
		if match(&a) {
			out := cloneAccount(a)
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *accountRepo) GetByID(_ context.Context, id string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.ID == id })
}

func (r *accountRepo) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	return r.find(func(a *models.Account) bool { return a.Username == username })
}

func (r *accountRepo) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	if email == "" {
		return nil, common.ErrorNotFound
	}
	return r.find(func(a *models.Account) bool { return a.Email == email })
}

func (r *accountRepo) UpdateMasterWrappedDEK(_ context.Context, id string, ciphertext, nonce []byte, version int) error {
	defer r.m.lock(r.db)()

	a, ok := r.m.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.MasterWrappedDEK = bytes.Clone(ciphertext)
	a.MasterWrappedNonce = bytes.Clone(nonce)
	a.MasterWrappedVersion = version
	r.m.st.accounts[id] = a
	return nil
}

func (r *accountRepo) UpdatePassphrase(_ context.Context, id string, u accounts.PassphraseUpdate) error {
	defer r.m.lock(r.db)()

	a, ok := r.m.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.E2EESalt = bytes.Clone(u.E2EESalt)
	a.MasterWrappedDEK = bytes.Clone(u.MasterWrappedDEK)
	a.MasterWrappedNonce = bytes.Clone(u.MasterWrappedNonce)
	a.MasterWrappedVersion = u.MasterWrappedVersion
	a.PassphraseVerifier = bytes.Clone(u.Verifier)
	a.PassphraseVerifierSalt = bytes.Clone(u.VerifierSalt)
	a.PassphraseVerifierVersion = u.VerifierVersion
	r.m.st.accounts[id] = a
	return nil
}

func cloneAccount(a models.Account) models.Account {
	a.E2EESalt = bytes.Clone(a.E2EESalt)
	a.MasterWrappedDEK = bytes.Clone(a.MasterWrappedDEK)
	a.MasterWrappedNonce = bytes.Clone(a.MasterWrappedNonce)
	a.PassphraseVerifier = bytes.Clone(a.PassphraseVerifier)
	a.PassphraseVerifierSalt = bytes.Clone(a.PassphraseVerifierSalt)
	ct, nonce := models.TOTPColumns(a.TOTP)
	a.TOTP = models.TOTPFromColumns(bytes.Clone(ct), bytes.Clone(nonce))
	return a
}

// sessions

type sessionRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *sessionRepo) Create(_ context.Context, s *models.Session) error {
	defer r.m.lock(r.db)()

	if _, ok := r.m.st.sessions[s.TokenHash]; ok {
		return common.ErrorConflict
	}
	s.CreatedAt = time.Now()
	r.m.st.sessions[s.TokenHash] = *s
	return nil
}

func (r *sessionRepo) FindByHash(_ context.Context, tokenHash string) (*models.Session, error) {
	defer r.m.lock(r.db)()

	s, ok := r.m.st.sessions[tokenHash]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &s, nil
}

func (r *sessionRepo) Rotate(_ context.Context, oldHash, newHash string, expiresAt time.Time) error {
	defer r.m.lock(r.db)()

	s, ok := r.m.st.sessions[oldHash]
	if !ok {
		return common.ErrorNotFound
	}
	delete(r.m.st.sessions, oldHash)
	s.TokenHash = newHash
	s.ExpiresAt = expiresAt
	r.m.st.sessions[newHash] = s
	return nil
}

func (r *sessionRepo) DeleteByHash(_ context.Context, tokenHash string) error {
	defer r.m.lock(r.db)()

	delete(r.m.st.sessions, tokenHash)
	return nil
}

func (r *sessionRepo) DeleteExpired(_ context.Context, accountID string, now time.Time) (int64, error) {
	defer r.m.lock(r.db)()

	var n int64
	for h, s := range r.m.st.sessions {
		if s.AccountID == accountID && s.ExpiresAt.Before(now) {
			delete(r.m.st.sessions, h)
			n++
		}
	}
	return n, nil
}

// login links

type loginLinkRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *loginLinkRepo) Create(_ context.Context, l *models.LoginLink) error {
	defer r.m.lock(r.db)()

	l.CreatedAt = time.Now()
	r.m.st.links[pairKey(l.AccountID, l.TokenHash)] = *l
	return nil
}

func (r *loginLinkRepo) Consume(_ context.Context, accountID, tokenHash string) (*models.LoginLink, error) {
	defer r.m.lock(r.db)()

	k := pairKey(accountID, tokenHash)
	l, ok := r.m.st.links[k]
	if !ok {
		return nil, common.ErrorNotFound
	}
	delete(r.m.st.links, k)
	return &l, nil
}

func (r *loginLinkRepo) DeleteExpired(_ context.Context, accountID string, now time.Time) (int64, error) {
	defer r.m.lock(r.db)()

	var n int64
	for k, l := range r.m.st.links {
		if l.AccountID == accountID && l.ExpiresAt.Before(now) {
			delete(r.m.st.links, k)
			n++
		}
	}
	return n, nil
}

// rate limits

type rateLimitRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *rateLimitRepo) Acquire(_ context.Context, key string) (*models.RateLimitBucket, error) {
	defer r.m.lock(r.db)()

	b, ok := r.m.st.buckets[key]
	if !ok {
		b = models.RateLimitBucket{Key: key, ResetAt: time.Unix(0, 0)}
		r.m.st.buckets[key] = b
	}
	return &b, nil
}

func (r *rateLimitRepo) Save(_ context.Context, b *models.RateLimitBucket) error {
	defer r.m.lock(r.db)()

	r.m.st.buckets[b.Key] = *b
	return nil
}

// devices

type deviceRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *deviceRepo) Upsert(_ context.Context, d *models.Device) error {
	defer r.m.lock(r.db)()

	k := pairKey(d.AccountID, d.DeviceID)
	now := time.Now()
	if existing, ok := r.m.st.devices[k]; ok {
		d.CreatedAt = existing.CreatedAt
	} else {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	stored := *d
	stored.WrappedDEK = bytes.Clone(d.WrappedDEK)
	stored.Nonce = bytes.Clone(d.Nonce)
	r.m.st.devices[k] = stored
	return nil
}

func (r *deviceRepo) Get(_ context.Context, accountID, deviceID string) (*models.Device, error) {
	defer r.m.lock(r.db)()

	d, ok := r.m.st.devices[pairKey(accountID, deviceID)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	d.WrappedDEK = bytes.Clone(d.WrappedDEK)
	d.Nonce = bytes.Clone(d.Nonce)
	return &d, nil
}

// notes

type noteRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *noteRepo) Insert(_ context.Context, n *models.Note) error {
	defer r.m.lock(r.db)()

	k := pairKey(n.AccountID, n.ClientNoteID)
	if _, ok := r.m.st.notes[k]; ok {
		return common.ErrorConflict
	}
	stored := *n
	stored.Ciphertext = nil
	stored.UpdatedAt = time.Now()
	r.m.st.notes[k] = stored
	return nil
}

func (r *noteRepo) GetByClientID(_ context.Context, accountID, clientNoteID string) (*models.Note, error) {
	defer r.m.lock(r.db)()

	n, ok := r.m.st.notes[pairKey(accountID, clientNoteID)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &n, nil
}

func (r *noteRepo) List(_ context.Context, accountID string) ([]models.Note, error) {
	defer r.m.lock(r.db)()

	result := make([]models.Note, 0)
	for _, n := range r.m.st.notes {
		if n.AccountID == accountID {
			result = append(result, n)
		}
	}
	slices.SortFunc(result, func(a, b models.Note) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	return result, nil
}

// preferences

type preferencesRepo struct {
	m  *Manager
	db dbx.DBTX
}

func (r *preferencesRepo) Get(_ context.Context, accountID string) (*models.Preferences, error) {
	defer r.m.lock(r.db)()

	p, ok := r.m.st.prefs[accountID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &p, nil
}

func (r *preferencesRepo) Upsert(_ context.Context, p *models.Preferences) error {
	defer r.m.lock(r.db)()

	p.UpdatedAt = time.Now()
	r.m.st.prefs[p.AccountID] = *p
	return nil
}
