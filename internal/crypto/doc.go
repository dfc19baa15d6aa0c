// Package crypto exposes the primitives behind the signal envelope.
//
// Contents
//
//   - PBKDF2-HMAC-SHA256 key derivation from the apiKey/apiSecret pair
//     (DeriveKey)
//   - AES-128-CBC with PKCS#7 padding and a fresh random IV per call
//     (Encrypt, EncryptWithRand, Decrypt)
//   - Wire encodings for ciphertext and IV (B64, HexIV, ParseIV)
//   - Short hex fingerprints of attribute sets (Fingerprint)
//
// # Notes
//
// Key derivation is deterministic: the intelligence service derives the same
// key from the same pair to decrypt, with apiKey as salt and apiSecret as
// passphrase. Nothing here can detect the two being swapped.
//
// Encryption never reuses an IV. Each call reads 16 bytes from a
// cryptographically secure source; a failing source surfaces as
// domain.CryptoUnavailableError rather than falling back to anything weaker.
package crypto
