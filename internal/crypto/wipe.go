package crypto

import (
	"insightagent/internal/domain"
	"insightagent/internal/util/memzero"
)

// Wipe zeroes the provided buffers. Best-effort; see memzero.Zero.
func Wipe(bufs ...[]byte) { memzero.Zero(bufs...) }

// WipeKey zeroes a derived key in place.
func WipeKey(k *domain.SymmetricKey) { memzero.Zero(k[:]) }
