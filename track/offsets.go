// offsets.go - Fixed-position offset table parsing
package track

import (
	"fmt"

	"github.com/retrosim/go-trackdat/format"
)

// TrackOffsets holds the seven signed values read from the fixed table at
// 0x1000. The last value locates the variable-length track data relative to
// the 0x1010 base.
type TrackOffsets struct {
	Values [format.OffsetTableCount]int16
}

// TrackDataOffset returns the absolute position where track data begins.
func (o TrackOffsets) TrackDataOffset() int {
	return format.TrackDataBase + int(o.Values[format.OffsetTableCount-1])
}

// ParseOffsets reads the offset table and validates that the computed track
// data offset lands inside the buffer.
func ParseOffsets(data []byte) (TrackOffsets, error) {
	if len(data) < format.OffsetTablePos+format.OffsetTableSize {
		return TrackOffsets{}, fmt.Errorf("file too short for offset table: %d bytes", len(data))
	}
	var o TrackOffsets
	for i := range o.Values {
		v, _ := format.Le16s(data, format.OffsetTablePos+i*2)
		o.Values[i] = v
	}
	off := o.TrackDataOffset()
	if off < 0 || off >= len(data) {
		return TrackOffsets{}, fmt.Errorf("track data offset out of bounds: %d (file is %d bytes)", off, len(data))
	}
	return o, nil
}
