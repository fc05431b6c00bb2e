package keys

import (
	"fmt"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
)

// Kind tags a wrapped key with the wrapping scheme that produced it.
type Kind int

const (
	// KindMaster is a DEK wrapped under the passphrase-derived master key.
	KindMaster Kind = iota + 1
	// KindDevice is a DEK wrapped under a per-device key.
	KindDevice
)

// Current wrap versions. They move independently.
const (
	MasterWrapVersion = 1
	DeviceWrapVersion = 1
)

func (k Kind) String() string {
	switch k {
	case KindMaster:
		return "master"
	case KindDevice:
		return "device"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ValidateVersion rejects versions a Kind does not know how to open.
func ValidateVersion(kind Kind, version int) error {
	switch kind {
	case KindMaster:
		if version == MasterWrapVersion {
			return nil
		}
	case KindDevice:
		if version == DeviceWrapVersion {
			return nil
		}
	default:
		return fmt.Errorf("unknown wrap kind %s: %w", kind, common.ErrorValidation)
	}
	return fmt.Errorf("%s wrap version %d: %w", kind, version, common.ErrUnsupportedVersion)
}

// Wrapped is a key sealed under another key. Ciphertext and nonce are kept
// apart, matching how they are stored and transported.
type Wrapped struct {
	Kind       Kind
	Version    int
	Ciphertext []byte
	Nonce      []byte
}

// Validate checks the version and the nonce length before any crypto runs.
func (w Wrapped) Validate() error {
	if err := ValidateVersion(w.Kind, w.Version); err != nil {
		return err
	}
	if err := CheckLen("nonce", w.Nonce, cryptox.NonceSize); err != nil {
		return err
	}
	if len(w.Ciphertext) == 0 {
		return fmt.Errorf("empty ciphertext: %w", common.ErrorValidation)
	}
	return nil
}

// Wrap seals payload under wrappingKey with the current version for kind.
func Wrap(kind Kind, payload, wrappingKey, aad []byte) (Wrapped, error) {
	var version int
	switch kind {
	case KindMaster:
		version = MasterWrapVersion
	case KindDevice:
		version = DeviceWrapVersion
	default:
		return Wrapped{}, fmt.Errorf("unknown wrap kind %s: %w", kind, common.ErrorValidation)
	}

	ct, nonce, err := cryptox.Seal(wrappingKey, payload, aad)
	if err != nil {
		return Wrapped{}, err
	}
	return Wrapped{Kind: kind, Version: version, Ciphertext: ct, Nonce: nonce}, nil
}

// Unwrap validates w and opens it under wrappingKey.
func Unwrap(w Wrapped, wrappingKey, aad []byte) ([]byte, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return cryptox.Open(wrappingKey, w.Ciphertext, w.Nonce, aad)
}

// WrapDEKWithMaster produces the server-stored master-wrapped DEK.
func WrapDEKWithMaster(dek, masterKey []byte) (Wrapped, error) {
	return Wrap(KindMaster, dek, masterKey, nil)
}

// UnwrapDEKWithMaster recovers the DEK. A wrong passphrase surfaces as
// common.ErrorCryptoFailure.
func UnwrapDEKWithMaster(w Wrapped, masterKey []byte) ([]byte, error) {
	if w.Kind != KindMaster {
		return nil, fmt.Errorf("expected master wrap, got %s: %w", w.Kind, common.ErrorValidation)
	}
	return Unwrap(w, masterKey, nil)
}

// WrapDEKForDevice produces the server-held device-wrapped DEK.
func WrapDEKForDevice(dek, deviceKey []byte) (Wrapped, error) {
	return Wrap(KindDevice, dek, deviceKey, nil)
}

// UnwrapDEKForDevice recovers the DEK from its device-wrapped form.
func UnwrapDEKForDevice(w Wrapped, deviceKey []byte) ([]byte, error) {
	if w.Kind != KindDevice {
		return nil, fmt.Errorf("expected device wrap, got %s: %w", w.Kind, common.ErrorValidation)
	}
	return Unwrap(w, deviceKey, nil)
}
