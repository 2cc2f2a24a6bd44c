package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of an encoded document.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintHex returns Fingerprint as a fixed-width lowercase hex string.
func FingerprintHex(data []byte) string {
	return fmt.Sprintf("%016x", Fingerprint(data))
}
