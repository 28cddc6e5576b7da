// header.go - Best-effort section header parsing
package track

import "github.com/retrosim/go-trackdat/format"

// SectionHeader is the 25-byte block preceding the section array. Only three
// fields are understood; the raw bytes are kept for future decoding.
type SectionHeader struct {
	StartWidth        uint16
	FirstSectionAngle uint16
	KerbType          uint8
	Raw               [format.SectionHeaderSize]byte
}

// ParseSectionHeader decodes the header at off. The header layout is only
// partially recovered, so failure is not an error: a buffer too short to hold
// the header yields nil, which callers treat as "no header available".
func ParseSectionHeader(data []byte, off int) *SectionHeader {
	if off < 0 || off+format.SectionHeaderSize > len(data) {
		return nil
	}
	var h SectionHeader
	copy(h.Raw[:], data[off:off+format.SectionHeaderSize])
	h.StartWidth, _ = format.Le16(data, off)
	h.FirstSectionAngle, _ = format.Le16(data, off+2)
	h.KerbType = data[off+4]
	return &h
}
