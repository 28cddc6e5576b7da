// exports.go - Re-exports for main package API
package trackdat

import (
	"github.com/retrosim/go-trackdat/format"
	"github.com/retrosim/go-trackdat/track"
)

// Re-export types from format package
type SegmentTag = format.SegmentTag

// Re-export constants from format package
const (
	OffsetTablePos      = format.OffsetTablePos
	TrackDataBase       = format.TrackDataBase
	SectionHeaderSize   = format.SectionHeaderSize
	SectionRecordSize   = format.SectionRecordSize
	SectionSentinel     = format.SectionSentinel
	ChecksumFooterSize  = format.ChecksumFooterSize
	MetersPerLengthUnit = format.MetersPerLengthUnit
	SegmentNormal       = format.SegmentNormal
	SegmentWideRadius   = format.SegmentWideRadius
	SegmentEnd          = format.SegmentEnd
)

// Re-export types from track package
type (
	Track          = track.Track
	TrackAsset     = track.TrackAsset
	TrackOffsets   = track.TrackOffsets
	SectionHeader  = track.SectionHeader
	Section        = track.Section
	SectionCommand = track.SectionCommand
	RacingLine     = track.RacingLine
	Segment        = track.Segment
	AIBehavior     = track.AIBehavior
	CarSetup       = track.CarSetup
	Camera         = track.Camera
	ObjectShape    = track.ObjectShape
)

// Re-export functions from track package
var (
	CalculateChecksum = track.CalculateChecksum
	StoredChecksum    = track.StoredChecksum
	VerifyChecksum    = track.VerifyChecksum
	ParseOffsets      = track.ParseOffsets
	ParseRacingLine   = track.ParseRacingLine
	ParseTrackAsset   = track.ParseTrackAsset
	ParseTrack        = track.ParseTrack
	LoadTrackAsset    = track.LoadTrackAsset
	LoadTrack         = track.LoadTrack
	DefaultAIBehavior = track.DefaultAIBehavior
)

// ScanSections is a convenience re-export of the section stream scanner.
func ScanSections(data []byte, start int) ([]Section, int, error) {
	return track.ScanSections(data, start)
}
