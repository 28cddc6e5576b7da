// endian.go - Little-endian byte reading utilities
package format

import (
	"encoding/binary"
	"errors"
)

func Le16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, errors.New("Le16 out of bounds")
	}
	return binary.LittleEndian.Uint16(b[off : off+2]), nil
}

func Le16s(b []byte, off int) (int16, error) {
	v, err := Le16(b, off)
	return int16(v), err
}

func Le32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, errors.New("Le32 out of bounds")
	}
	return binary.LittleEndian.Uint32(b[off : off+4]), nil
}
