// Package fixture generates synthetic track files so the decoder can be
// tested without the proprietary original assets. Generated buffers carry a
// valid offset table, a zeroed header, minimal section records, the sentinel
// and a correct checksum footer, and parse cleanly through the same pipeline
// as real files.
package fixture

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retrosim/go-trackdat/format"
	"github.com/retrosim/go-trackdat/track"
)

const (
	DefaultTrackDataOffset = 0x1100
	DefaultSectionCount    = 15

	// Placeholder length (in stored units) of each generated section.
	sectionLengthUnits = 50
)

// TrackBytes builds a minimal, internally-consistent track file buffer with
// sectionCount section records and the track data block at trackDataOffset.
func TrackBytes(sectionCount, trackDataOffset int) []byte {
	blockSize := format.SectionHeaderSize + sectionCount*format.SectionRecordSize + 2
	data := make([]byte, trackDataOffset+blockSize+format.ChecksumFooterSize)

	// Offset table: six zero values, then the signed displacement of the
	// track data block from the base address.
	rel := int16(trackDataOffset - format.TrackDataBase)
	binary.LittleEndian.PutUint16(data[format.OffsetTablePos+12:], uint16(rel))

	// Header stays zeroed; section records get a placeholder length with
	// zero curvature, height and flags.
	cur := trackDataOffset + format.SectionHeaderSize
	for i := 0; i < sectionCount; i++ {
		binary.LittleEndian.PutUint16(data[cur:], sectionLengthUnits)
		cur += format.SectionRecordSize
	}
	data[cur] = 0xFF
	data[cur+1] = 0xFF

	sum := track.CalculateChecksum(data)
	binary.LittleEndian.PutUint32(data[len(data)-format.ChecksumFooterSize:], sum)
	return data
}

// SyntheticTrack builds a runtime model directly, bypassing the byte format:
// sectionCount equal-length straight sections summing to lengthMeters.
func SyntheticTrack(sectionCount int, lengthMeters float32) track.Track {
	var sections []track.Section
	if sectionCount > 0 {
		each := lengthMeters / float32(sectionCount)
		sections = make([]track.Section, sectionCount)
		for i := range sections {
			sections[i] = track.Section{Length: each}
		}
	} else {
		lengthMeters = 0
	}
	return track.Track{
		Name:       "Synthetic Track",
		Length:     lengthMeters,
		Sections:   sections,
		AIBehavior: track.DefaultAIBehavior(),
	}
}

// WriteTrackBytes writes a generated buffer to path, creating parent
// directories as needed.
func WriteTrackBytes(path string, sectionCount, trackDataOffset int) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create fixture dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, TrackBytes(sectionCount, trackDataOffset), 0o644); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}

// WriteTrackFixture writes the default fixture used across test runs.
func WriteTrackFixture(path string) error {
	return WriteTrackBytes(path, DefaultSectionCount, DefaultTrackDataOffset)
}
