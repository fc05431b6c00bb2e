// Package totp implements RFC 6238 time-based one-time codes (HMAC-SHA-1,
// 30 second step, 6 digits) with a one-step skew window.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultStep   = 30 * time.Second
	DefaultDigits = 6
	DefaultWindow = 1

	// SecretLen is the encoded length of a generated secret.
	SecretLen  = 32
	secretSize = 20 // 160 bits encode to exactly SecretLen base32 chars
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// GenerateSecret returns a fresh base32 secret of SecretLen characters.
func GenerateSecret() (string, error) {
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", err
	}
	return encoding.EncodeToString(secret), nil
}

// Code returns the code for secret at time when.
func Code(secret string, when time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	defer zero(key)
	return computeCode(key, uint64(when.Unix()/int64(DefaultStep/time.Second))), nil
}

// Verify reports whether code matches secret at when, or one step either
// side of it. Whitespace inside the code is ignored.
func Verify(code, secret string, when time.Time) bool {
	code = strings.Join(strings.Fields(code), "")
	if len(code) != DefaultDigits {
		return false
	}
	key, err := decodeSecret(secret)
	if err != nil {
		return false
	}
	defer zero(key)

	counter := when.Unix() / int64(DefaultStep/time.Second)
	for i := int64(-DefaultWindow); i <= DefaultWindow; i++ {
		cur := counter + i
		if cur < 0 {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(computeCode(key, uint64(cur))), []byte(code)) == 1 {
			return true
		}
	}
	return false
}

// ProvisionURI builds the otpauth:// URI understood by authenticator apps.
func ProvisionURI(issuer, account, secret string) string {
	label := url.PathEscape(issuer) + ":" + url.PathEscape(account)
	q := url.Values{}
	q.Set("secret", secret)
	q.Set("issuer", issuer)
	q.Set("algorithm", "SHA1")
	q.Set("digits", fmt.Sprint(DefaultDigits))
	q.Set("period", fmt.Sprint(int(DefaultStep/time.Second)))
	return "otpauth://totp/" + label + "?" + q.Encode()
}

func computeCode(secret []byte, counter uint64) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], counter)

	mac := hmac.New(sha1.New, secret)
	mac.Write(buf[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0F
	trunc := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF
	return fmt.Sprintf("%0*d", DefaultDigits, trunc%1000000)
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimRight(strings.TrimSpace(secret), "="))
	return encoding.DecodeString(secret)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
