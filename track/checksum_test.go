package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumKnownBuffer(t *testing.T) {
	// payload 01 02 03 04, footer = LE 0x0A (= 1+2+3+4)
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x0A, 0x00, 0x00, 0x00}

	assert.Equal(t, uint32(0x0A), CalculateChecksum(data))

	stored, ok := StoredChecksum(data)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x0A), stored)

	assert.True(t, VerifyChecksum(data))
}

func TestChecksumAllZeroPayload(t *testing.T) {
	data := make([]byte, 256)
	assert.Equal(t, uint32(0), CalculateChecksum(data))
	assert.True(t, VerifyChecksum(data))
}

func TestChecksumWraps(t *testing.T) {
	// 17M bytes of 0xFF sum past 2^32; the result must wrap, not saturate.
	data := make([]byte, 17_000_000)
	for i := range data {
		data[i] = 0xFF
	}
	payload := uint64(len(data) - 4)
	want := uint32((payload * 0xFF) & 0xFFFFFFFF)
	assert.Equal(t, want, CalculateChecksum(data))
}

func TestChecksumShortBuffers(t *testing.T) {
	assert.Equal(t, uint32(0), CalculateChecksum(nil))
	assert.Equal(t, uint32(0), CalculateChecksum([]byte{1, 2, 3, 4}))

	_, ok := StoredChecksum([]byte{1, 2, 3})
	assert.False(t, ok)
	_, ok = StoredChecksum(nil)
	assert.False(t, ok)

	assert.False(t, VerifyChecksum(nil))
	assert.False(t, VerifyChecksum([]byte{1, 2, 3}))
}
