package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"insightagent/internal/domain"
)

// IVBytes is the AES block size and the IV length.
const IVBytes = aes.BlockSize

var (
	// ErrMalformedEnvelope is returned when ciphertext or IV cannot be decoded.
	ErrMalformedEnvelope = errors.New("malformed envelope")
	// ErrBadPadding is returned when PKCS#7 padding does not verify after
	// decryption, usually because the key is wrong.
	ErrBadPadding = errors.New("invalid padding")
)

// Encrypt seals plaintext under key with a fresh IV from crypto/rand.
func Encrypt(key domain.SymmetricKey, plaintext []byte) (domain.Envelope, error) {
	return EncryptWithRand(rand.Reader, key, plaintext)
}

// EncryptWithRand is Encrypt with an explicit randomness source for the IV.
func EncryptWithRand(rnd io.Reader, key domain.SymmetricKey, plaintext []byte) (domain.Envelope, error) {
	if rnd == nil {
		return domain.Envelope{}, &domain.CryptoUnavailableError{Op: "iv", Err: errors.New("no random source")}
	}
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return domain.Envelope{}, &domain.CryptoUnavailableError{Op: "aes", Err: err}
	}

	var iv [IVBytes]byte
	if _, err := io.ReadFull(rnd, iv[:]); err != nil {
		return domain.Envelope{}, &domain.CryptoUnavailableError{Op: "iv", Err: err}
	}

	padded := pkcs7Pad(plaintext, block.BlockSize())
	defer Wipe(padded)

	ct := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ct, padded)

	return domain.Envelope{
		EncodedData: B64(ct),
		IV:          HexIV(iv),
	}, nil
}

// Decrypt opens env under key. This is the intelligence service's half of
// the protocol; the agent itself never calls it.
func Decrypt(key domain.SymmetricKey, env domain.Envelope) ([]byte, error) {
	iv, err := ParseIV(env.IV)
	if err != nil {
		return nil, err
	}
	ct, err := base64.StdEncoding.DecodeString(env.EncodedData)
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext: %v", ErrMalformedEnvelope, err)
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrMalformedEnvelope, len(ct))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, &domain.CryptoUnavailableError{Op: "aes", Err: err}
	}
	pt := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(pt, ct)
	return pkcs7Unpad(pt, aes.BlockSize)
}

// pkcs7Pad always adds between 1 and blockSize bytes.
func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	out := make([]byte, len(b), len(b)+n)
	copy(out, b)
	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, ErrBadPadding
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
