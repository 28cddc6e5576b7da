// racingline.go - Racing line segment list parsing
package track

import (
	"fmt"

	"github.com/retrosim/go-trackdat/format"
)

// Segment is one piece of the ideal driving line. Tag selects the variant:
// Normal segments carry Radius, WideRadius segments carry HighRadius and
// LowRadius. Length and Correction are shared.
type Segment struct {
	Tag        format.SegmentTag
	Length     uint16
	Correction int16
	Radius     int16 // Normal only
	HighRadius int16 // WideRadius only
	LowRadius  int16 // WideRadius only
}

// RacingLine is the ideal path around the circuit: a displacement value plus
// an ordered, closed-loop list of segments matching section order.
type RacingLine struct {
	Displacement int16
	Segments     []Segment
}

// Segment encodings: tag byte, u16 length, i16 correction, then one i16
// radius (Normal) or two (WideRadius).
const (
	normalSegmentSize = 7
	wideSegmentSize   = 9
)

// ParseRacingLine decodes the racing line from data[start:end), where end is
// the last position before the checksum footer. The exact termination of the
// segment list is not fully recovered; decoding stops at an end-of-list tag
// or when too few bytes remain for another segment. An empty region yields an
// empty line. An unrecognized tag is a parse error.
func ParseRacingLine(data []byte, start, end int) (RacingLine, error) {
	var rl RacingLine
	if end > len(data) {
		end = len(data)
	}
	if start < 0 || start+2 > end {
		return rl, nil
	}
	rl.Displacement, _ = format.Le16s(data, start)
	cur := start + 2
	for cur < end {
		tag := format.SegmentTag(data[cur])
		if tag == format.SegmentEnd {
			break
		}
		if cur+normalSegmentSize > end {
			break
		}
		seg := Segment{Tag: tag}
		seg.Length, _ = format.Le16(data, cur+1)
		seg.Correction, _ = format.Le16s(data, cur+3)
		switch tag {
		case format.SegmentNormal:
			seg.Radius, _ = format.Le16s(data, cur+5)
			cur += normalSegmentSize
		case format.SegmentWideRadius:
			if cur+wideSegmentSize > end {
				return RacingLine{}, fmt.Errorf("truncated wide-radius segment at %d", cur)
			}
			seg.HighRadius, _ = format.Le16s(data, cur+5)
			seg.LowRadius, _ = format.Le16s(data, cur+7)
			cur += wideSegmentSize
		default:
			return RacingLine{}, fmt.Errorf("unknown racing-line segment tag 0x%02X at %d", uint8(tag), cur)
		}
		rl.Segments = append(rl.Segments, seg)
	}
	return rl, nil
}
