package track

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosim/go-trackdat/format"
)

func bufferWithOffset(size int, rel int16) []byte {
	data := make([]byte, size)
	binary.LittleEndian.PutUint16(data[format.OffsetTablePos+12:], uint16(rel))
	return data
}

func TestParseOffsets(t *testing.T) {
	data := bufferWithOffset(0x1200, 0xF0) // track data at 0x1100
	o, err := ParseOffsets(data)
	assert.NoError(t, err)
	assert.Equal(t, 0x1100, o.TrackDataOffset())
	assert.Equal(t, int16(0xF0), o.Values[6])
}

func TestParseOffsetsNegativeDisplacement(t *testing.T) {
	// A negative value is legal as long as the result stays in bounds.
	data := bufferWithOffset(0x1200, -0x10) // track data at 0x1000
	o, err := ParseOffsets(data)
	assert.NoError(t, err)
	assert.Equal(t, 0x1000, o.TrackDataOffset())
}

func TestParseOffsetsShortFile(t *testing.T) {
	_, err := ParseOffsets(make([]byte, 0x100))
	assert.ErrorContains(t, err, "too short")

	// One byte short of holding the full table.
	_, err = ParseOffsets(make([]byte, format.OffsetTablePos+format.OffsetTableSize-1))
	assert.Error(t, err)
}

func TestParseOffsetsOutOfBounds(t *testing.T) {
	// Points past the end of the file.
	data := bufferWithOffset(0x1100, 0x200)
	_, err := ParseOffsets(data)
	assert.ErrorContains(t, err, "out of bounds")

	// Points before the start of the file.
	data = bufferWithOffset(0x1100, -0x1100)
	_, err = ParseOffsets(data)
	assert.ErrorContains(t, err, "out of bounds")
}
