package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/server/blobstore"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// MaxNoteSize bounds a single note ciphertext.
const MaxNoteSize = 1 << 20

// NoteInput is a client-encrypted note.
type NoteInput struct {
	ClientNoteID string
	Ciphertext   []byte
	Nonce        []byte
	AAD          []byte
	Version      int
	CreatedAt    time.Time
}

// NoteService stores notes sealed by the client under the DEK. Metadata goes
// to the record store and ciphertext to the blob store.
type NoteService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	blobs       blobstore.Store
	now         func() time.Time
}

func NewNoteService(tx dbx.Transactor, m repomanager.RepositoryManager, blobs blobstore.Store) *NoteService {
	return &NoteService{tx: tx, repomanager: m, blobs: blobs, now: time.Now}
}

// CreateNote stores a note once per (accountID, ClientNoteID). Repeating the
// call with the same client id is a no-op.
func (s *NoteService) CreateNote(ctx context.Context, accountID string, in NoteInput) error {
	if err := validateClientID("note id", in.ClientNoteID); err != nil {
		return err
	}
	if len(in.Ciphertext) == 0 || len(in.Ciphertext) > MaxNoteSize {
		return fmt.Errorf("%w: invalid note size", common.ErrorValidation)
	}
	if err := keys.CheckLen("note nonce", in.Nonce, cryptox.NonceSize); err != nil {
		return err
	}
	if in.Version != keys.NoteSchemaVersion {
		return fmt.Errorf("note version %d: %w", in.Version, common.ErrUnsupportedVersion)
	}

	repo := s.repomanager.Notes(s.tx.Conn())
	if _, err := repo.GetByClientID(ctx, accountID, in.ClientNoteID); err == nil {
		return nil
	} else if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error looking up note: %w", err)
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	key := blobstore.NewKey(accountID, s.now())
	if err := s.blobs.Put(ctx, key, in.Ciphertext); err != nil {
		return fmt.Errorf("error storing note body: %w", err)
	}

	err := repo.Insert(ctx, &models.Note{
		ID:           uuid.NewString(),
		AccountID:    accountID,
		ClientNoteID: in.ClientNoteID,
		StorageKey:   key,
		Nonce:        in.Nonce,
		AAD:          in.AAD,
		Version:      in.Version,
		CreatedAt:    createdAt,
	})
	if errors.Is(err, common.ErrorConflict) {
		// lost a race with an identical request; its blob is the one referenced
		return nil
	}
	if err != nil {
		return fmt.Errorf("error storing note: %w", err)
	}
	return nil
}

// ListNotes returns the account's notes, newest first, with their bodies.
func (s *NoteService) ListNotes(ctx context.Context, accountID string) ([]models.Note, error) {
	list, err := s.repomanager.Notes(s.tx.Conn()).List(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}

	for i := range list {
		body, err := s.blobs.Get(ctx, list[i].StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error loading note %s: %w", list[i].ClientNoteID, err)
		}
		list[i].Ciphertext = body
	}
	return list, nil
}
