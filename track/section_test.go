package track

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// record appends one 10-byte section record.
func record(buf []byte, length uint16, curvature, height int16, flags uint16, reserved [2]byte) []byte {
	rec := make([]byte, 10)
	binary.LittleEndian.PutUint16(rec[0:], length)
	binary.LittleEndian.PutUint16(rec[2:], uint16(curvature))
	binary.LittleEndian.PutUint16(rec[4:], uint16(height))
	binary.LittleEndian.PutUint16(rec[6:], flags)
	rec[8] = reserved[0]
	rec[9] = reserved[1]
	return append(buf, rec...)
}

func sentinel(buf []byte) []byte {
	return append(buf, 0xFF, 0xFF)
}

func TestScanSectionsEmpty(t *testing.T) {
	// A sentinel right at the start is a legal empty circuit.
	data := sentinel(nil)
	sections, cursor, err := ScanSections(data, 0)
	assert.NoError(t, err)
	assert.Empty(t, sections)
	assert.Equal(t, 2, cursor)
}

func TestScanSections(t *testing.T) {
	var data []byte
	data = record(data, 200, -40, 8, 0x0001, [2]byte{0, 0})
	data = record(data, 100, 0, -3, 0x0002, [2]byte{2, 7})
	data = sentinel(data)

	sections, cursor, err := ScanSections(data, 0)
	assert.NoError(t, err)
	assert.Len(t, sections, 2)
	assert.Equal(t, len(data), cursor)

	assert.InDelta(t, 50.0, sections[0].Length, 1e-6) // 200 units at 0.25m
	assert.Equal(t, int16(-40), sections[0].Curvature)
	assert.Equal(t, int16(8), sections[0].Height)
	assert.True(t, sections[0].HasLeftKerb)
	assert.False(t, sections[0].HasRightKerb)
	assert.Empty(t, sections[0].Commands)

	assert.InDelta(t, 25.0, sections[1].Length, 1e-6)
	assert.False(t, sections[1].HasLeftKerb)
	assert.True(t, sections[1].HasRightKerb)
	assert.Len(t, sections[1].Commands, 2)
	assert.Equal(t, uint8(7), sections[1].Commands[0].Kind)
	assert.Equal(t, [2]byte{2, 7}, sections[1].Reserved)
}

func TestScanSectionsMissingSentinel(t *testing.T) {
	var data []byte
	data = record(data, 50, 0, 0, 0, [2]byte{})

	_, _, err := ScanSections(data, 0)
	assert.ErrorContains(t, err, "sentinel")
}

func TestScanSectionsTruncatedRecord(t *testing.T) {
	var data []byte
	data = record(data, 50, 0, 0, 0, [2]byte{})
	data = append(data, 0x10, 0x00, 0x01) // partial second record

	_, _, err := ScanSections(data, 0)
	assert.Error(t, err)
}

func TestScanSectionsStartPastEnd(t *testing.T) {
	_, _, err := ScanSections(make([]byte, 4), 10)
	assert.Error(t, err)
}
