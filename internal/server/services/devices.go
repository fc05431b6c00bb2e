package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/dbx"
	"github.com/dmitrijs2005/notevault/internal/keys"
	"github.com/dmitrijs2005/notevault/internal/server/models"
	"github.com/dmitrijs2005/notevault/internal/server/repositories/repomanager"
)

// MaxClientIDLen bounds client-chosen identifiers (device and note ids).
const MaxClientIDLen = 128

// DeviceService stores the DEK wrapped per device. The server cannot open
// these blobs; it only hands them back to the device that registered them.
type DeviceService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
}

func NewDeviceService(tx dbx.Transactor, m repomanager.RepositoryManager) *DeviceService {
	return &DeviceService{tx: tx, repomanager: m}
}

func validateClientID(what, id string) error {
	if strings.TrimSpace(id) == "" || len(id) > MaxClientIDLen {
		return fmt.Errorf("%w: invalid %s", common.ErrorValidation, what)
	}
	return nil
}

// RegisterDevice upserts the device-wrapped DEK for (accountID, deviceID).
func (s *DeviceService) RegisterDevice(ctx context.Context, accountID, deviceID string, w keys.Wrapped) error {
	if err := validateClientID("device id", deviceID); err != nil {
		return err
	}
	if w.Kind != keys.KindDevice {
		return fmt.Errorf("expected device wrap: %w", common.ErrorValidation)
	}
	if err := w.Validate(); err != nil {
		return err
	}

	err := s.repomanager.Devices(s.tx.Conn()).Upsert(ctx, &models.Device{
		AccountID:  accountID,
		DeviceID:   deviceID,
		WrappedDEK: w.Ciphertext,
		Nonce:      w.Nonce,
		Version:    w.Version,
	})
	if err != nil {
		return fmt.Errorf("error registering device: %w", err)
	}
	return nil
}

// FetchWrappedDEKForDevice returns common.ErrorNotFound for unknown devices.
func (s *DeviceService) FetchWrappedDEKForDevice(ctx context.Context, accountID, deviceID string) (keys.Wrapped, error) {
	if err := validateClientID("device id", deviceID); err != nil {
		return keys.Wrapped{}, err
	}

	d, err := s.repomanager.Devices(s.tx.Conn()).Get(ctx, accountID, deviceID)
	if err != nil {
		return keys.Wrapped{}, err
	}
	return keys.Wrapped{Kind: keys.KindDevice, Version: d.Version, Ciphertext: d.WrappedDEK, Nonce: d.Nonce}, nil
}
