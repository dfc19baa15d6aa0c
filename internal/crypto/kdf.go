package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"

	"insightagent/internal/domain"
)

const (
	// KDFIterations is fixed by the backend protocol.
	KDFIterations = 1000
	// KeyBytes is the derived AES-128 key length.
	KeyBytes = 16
)

// DeriveKey derives the envelope key with PBKDF2-HMAC-SHA256.
// By protocol salt is the apiKey and passphrase the apiSecret.
func DeriveKey(salt, passphrase string) domain.SymmetricKey {
	var key domain.SymmetricKey
	dk := pbkdf2.Key([]byte(passphrase), []byte(salt), KDFIterations, KeyBytes, sha256.New)
	copy(key[:], dk)
	Wipe(dk)
	return key
}
