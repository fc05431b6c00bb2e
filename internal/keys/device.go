package keys

import (
	"encoding/json"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/cryptox"
)

// DeviceKeyLabel is the associated data binding a wrapped device key to the
// device it belongs to.
func DeviceKeyLabel(deviceID string) []byte {
	return []byte("device-key:" + deviceID)
}

// DeviceBundle is what a device keeps locally: its device key wrapped under
// the master key. The raw key is only populated right after provisioning.
type DeviceBundle struct {
	DeviceID     string
	EncryptedKey []byte
	Nonce        []byte
	Version      int

	Key []byte
}

// ProvisionDevice creates a new device key and wraps it under masterKey with
// the device label as associated data.
func ProvisionDevice(masterKey []byte, deviceID string) (*DeviceBundle, error) {
	deviceKey, err := cryptox.RandomBytes(DEKLen)
	if err != nil {
		return nil, err
	}
	ct, nonce, err := cryptox.Seal(masterKey, deviceKey, DeviceKeyLabel(deviceID))
	if err != nil {
		common.WipeByteArray(deviceKey)
		return nil, err
	}
	return &DeviceBundle{
		DeviceID:     deviceID,
		EncryptedKey: ct,
		Nonce:        nonce,
		Version:      DeviceWrapVersion,
		Key:          deviceKey,
	}, nil
}

// OpenDevice recovers the device key. Opening a bundle under a different
// device id fails, since the label is authenticated.
func OpenDevice(b *DeviceBundle, masterKey []byte) ([]byte, error) {
	if err := ValidateVersion(KindDevice, b.Version); err != nil {
		return nil, err
	}
	return cryptox.Open(masterKey, b.EncryptedKey, b.Nonce, DeviceKeyLabel(b.DeviceID))
}

// NoteSchemaVersion tags note payloads sealed by SealNote.
const NoteSchemaVersion = 1

// SealedNote is a note body encrypted under the DEK.
type SealedNote struct {
	Ciphertext []byte
	Nonce      []byte
	AAD        []byte
	Version    int
}

type noteAAD struct {
	UserID string `json:"userId"`
	NoteID string `json:"noteId"`
	V      int    `json:"v"`
}

// SealNote encrypts a note body under dek, binding it to the owner and the
// client note id.
func SealNote(dek []byte, plaintext []byte, accountID, noteID string) (*SealedNote, error) {
	aad, err := json.Marshal(noteAAD{UserID: accountID, NoteID: noteID, V: NoteSchemaVersion})
	if err != nil {
		return nil, err
	}
	ct, nonce, err := cryptox.Seal(dek, plaintext, aad)
	if err != nil {
		return nil, err
	}
	return &SealedNote{Ciphertext: ct, Nonce: nonce, AAD: aad, Version: NoteSchemaVersion}, nil
}

// OpenNote decrypts a note sealed by SealNote.
func OpenNote(dek []byte, n *SealedNote) ([]byte, error) {
	return cryptox.Open(dek, n.Ciphertext, n.Nonce, n.AAD)
}
