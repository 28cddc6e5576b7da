// checksum.go - Checksum footer calculation and validation
package track

import (
	"encoding/binary"

	"github.com/retrosim/go-trackdat/format"
)

// CalculateChecksum computes the wrapping (mod 2^32) sum of every byte's
// unsigned value, excluding the 4-byte footer. Buffers of 4 bytes or fewer
// yield 0.
func CalculateChecksum(data []byte) uint32 {
	if len(data) <= format.ChecksumFooterSize {
		return 0
	}
	var sum uint32
	for _, b := range data[:len(data)-format.ChecksumFooterSize] {
		sum += uint32(b)
	}
	return sum
}

// StoredChecksum reads the footer value from the last 4 bytes. ok is false
// when the buffer is too short to hold a footer.
func StoredChecksum(data []byte) (stored uint32, ok bool) {
	if len(data) < format.ChecksumFooterSize {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[len(data)-format.ChecksumFooterSize:]), true
}

// VerifyChecksum reports whether the stored footer matches the computed sum.
// A missing footer is a mismatch, never a panic.
func VerifyChecksum(data []byte) bool {
	stored, ok := StoredChecksum(data)
	return ok && stored == CalculateChecksum(data)
}
