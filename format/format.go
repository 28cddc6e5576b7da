// format.go - Layout constants and enumerated types for the track file format
package format

// Sizes and fixed positions (little-endian throughout)
const (
	OffsetTablePos   = 0x1000 // seven consecutive i16 values
	OffsetTableCount = 7
	OffsetTableSize  = OffsetTableCount * 2
	TrackDataBase    = 0x1010 // offsets[6] is a signed displacement from here

	SectionHeaderSize = 25
	SectionRecordSize = 10 // u16 length, i16 curvature, i16 height, u16 flags, 2 reserved
	SectionSentinel   = 0xFFFF

	ChecksumFooterSize = 4

	// Section lengths are stored in quarter-metre units.
	MetersPerLengthUnit = 0.25
)

// Section flag bits (only the kerb bits are recovered so far; the rest of
// the word is carried through unmodified)
const (
	FlagLeftKerb  uint16 = 0x0001
	FlagRightKerb uint16 = 0x0002
)

// SegmentTag selects the racing-line segment variant.
type SegmentTag uint8

const (
	SegmentNormal     SegmentTag = 0x00 // single radius
	SegmentWideRadius SegmentTag = 0x01 // separate high/low radius
	SegmentEnd        SegmentTag = 0xFF // end of segment list
)
