// asset.go - Parsed asset assembly and conversion to the runtime model
package track

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/retrosim/go-trackdat/format"
)

// TrackAsset is the rich intermediate result of a parse: the decoded model
// plus the diagnostics (stored vs computed checksum, scan positions,
// warnings) that tooling wants and the runtime does not.
type TrackAsset struct {
	Name              string
	RawSize           int
	Checksum          uint32 // stored footer value, 0 when the footer is missing
	ComputedChecksum  uint32
	Offsets           TrackOffsets
	Header            *SectionHeader // nil when the header could not be decoded
	RacingLine        RacingLine
	Sections          []Section
	PitLane           []Section
	Cameras           []Camera
	ObjectShapes      []ObjectShape
	SectionDataOffset int // absolute offset where section records begin
	Warnings          []string
}

// A segment list wildly out of proportion to the section count suggests the
// termination hypothesis misread the file; flag it for manual review.
func segmentCountSuspicious(segments, sections int) bool {
	return segments > 4*sections+16
}

// ParseTrackAsset runs the full decode pipeline over a file buffer: offset
// table, section header (best-effort), section stream, racing line, checksum.
// Structural failures abort with an error; integrity problems are recorded in
// Warnings and never fail the parse.
func ParseTrackAsset(data []byte, name string) (*TrackAsset, error) {
	offsets, err := ParseOffsets(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	trackData := offsets.TrackDataOffset()
	header := ParseSectionHeader(data, trackData)

	sectionStart := trackData + format.SectionHeaderSize
	sections, cursor, err := ScanSections(data, sectionStart)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	lineEnd := len(data) - format.ChecksumFooterSize
	if lineEnd < cursor {
		lineEnd = cursor
	}
	line, err := ParseRacingLine(data, cursor, lineEnd)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	asset := &TrackAsset{
		Name:              name,
		RawSize:           len(data),
		ComputedChecksum:  CalculateChecksum(data),
		Offsets:           offsets,
		Header:            header,
		RacingLine:        line,
		Sections:          sections,
		SectionDataOffset: sectionStart,
	}

	if stored, ok := StoredChecksum(data); !ok {
		asset.warnf("checksum footer missing (%d bytes)", len(data))
	} else {
		asset.Checksum = stored
		if stored != asset.ComputedChecksum {
			asset.warnf("checksum mismatch: stored 0x%08X, computed 0x%08X", stored, asset.ComputedChecksum)
		}
	}
	if segmentCountSuspicious(len(line.Segments), len(sections)) {
		asset.warnf("racing line has %d segments for %d sections; needs manual review", len(line.Segments), len(sections))
	}
	return asset, nil
}

func (a *TrackAsset) warnf(msg string, args ...any) {
	a.Warnings = append(a.Warnings, fmt.Sprintf(msg, args...))
}

// IntoTrack converts the asset into the runtime Track. The conversion is
// purely structural; total length is the sum of section lengths and the AI
// behavior defaults until its byte format is decoded.
func (a *TrackAsset) IntoTrack() Track {
	return Track{
		Name:         a.Name,
		Length:       lo.SumBy(a.Sections, func(s Section) float32 { return s.Length }),
		ObjectShapes: a.ObjectShapes,
		Sections:     a.Sections,
		RacingLine:   a.RacingLine,
		AIBehavior:   DefaultAIBehavior(),
		PitLane:      a.PitLane,
		Cameras:      a.Cameras,
		Checksum:     a.Checksum,
	}
}

// ParseTrack is the one-step variant for callers that do not need the
// diagnostic asset.
func ParseTrack(data []byte, name string) (Track, error) {
	asset, err := ParseTrackAsset(data, name)
	if err != nil {
		return Track{}, err
	}
	return asset.IntoTrack(), nil
}
