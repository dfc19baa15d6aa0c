package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites every buffer with zeros in a constant-time friendly way.
// Nil and empty buffers are skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		zero := make([]byte, len(b))
		subtle.ConstantTimeCopy(1, b, zero)
		runtime.KeepAlive(b)
	}
}
