// Package devices declares the repository contract for device-wrapped DEKs.
package devices

import (
	"context"

	"github.com/dmitrijs2005/notevault/internal/server/models"
)

type Repository interface {
	// Upsert stores the wrapped DEK for (AccountID, DeviceID), replacing any
	// previous value.
	Upsert(ctx context.Context, d *models.Device) error

	// Get returns common.ErrorNotFound when the device is not registered.
	Get(ctx context.Context, accountID, deviceID string) (*models.Device, error)
}
