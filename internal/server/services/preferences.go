package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
)

// PreferencesView is what clients see: the chosen method and whether TOTP
// is available at all.
type PreferencesView struct {
	AuthMethod  models.AuthMethod
	TOTPEnabled bool
}

type PreferencesService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
}

func NewPreferencesService(tx dbx.Transactor, m repomanager.RepositoryManager) *PreferencesService {
	return &PreferencesService{tx: tx, repomanager: m}
}

func defaultAuthMethod(a *models.Account) models.AuthMethod {
	if models.TOTPIsEnabled(a.TOTP) {
		return models.AuthMethodTOTP
	}
	return models.AuthMethodMagic
}

// Get returns the stored preferences, saving the default on first access.
func (s *PreferencesService) Get(ctx context.Context, accountID string) (*PreferencesView, error) {
	var view *PreferencesView
	err := s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		account, err := s.loadAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}

		repo := s.repomanager.Preferences(tx)
		p, err := repo.Get(ctx, accountID)
		if errors.Is(err, common.ErrorNotFound) {
			p = &models.Preferences{AccountID: accountID, AuthMethod: defaultAuthMethod(account)}
			err = repo.Upsert(ctx, p)
		}
		if err != nil {
			return err
		}

		view = &PreferencesView{AuthMethod: p.AuthMethod, TOTPEnabled: models.TOTPIsEnabled(account.TOTP)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Update sets the preferred method. TOTP can only be chosen when the account
// has a TOTP secret.
func (s *PreferencesService) Update(ctx context.Context, accountID string, method models.AuthMethod) (*PreferencesView, error) {
	if !method.Valid() {
		return nil, common.ErrInvalidAuthMethod
	}

	var view *PreferencesView
	err := s.tx.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		account, err := s.loadAccount(ctx, tx, accountID)
		if err != nil {
			return err
		}
		totpEnabled := models.TOTPIsEnabled(account.TOTP)
		if method == models.AuthMethodTOTP && !totpEnabled {
			return common.ErrTOTPNotEnabled
		}
		if err := s.repomanager.Preferences(tx).Upsert(ctx, &models.Preferences{AccountID: accountID, AuthMethod: method}); err != nil {
			return err
		}
		view = &PreferencesView{AuthMethod: method, TOTPEnabled: totpEnabled}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *PreferencesService) loadAccount(ctx context.Context, db dbx.DBTX, accountID string) (*models.Account, error) {
	a, err := s.repomanager.Accounts(db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error loading account: %w", err)
	}
	return a, nil
}
