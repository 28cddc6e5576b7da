// Package trackdat provides a Go library for parsing legacy racing-simulator
// circuit description files ("track files").
//
// The library is organized into logical groups of functionality:
//
// Core Types and Constants:
//   - format/format.go: Layout constants and flag/tag types (offset table
//     position, record sizes, sentinel, segment tags)
//   - format/endian.go: Little-endian byte reading utilities
//
// File Structure Components:
//   - track/offsets.go: Fixed-position offset table locating the track data
//   - track/header.go: Best-effort 25-byte section header parsing
//   - track/section.go: Section record scanning up to the 0xFFFF sentinel
//   - track/racingline.go: Tagged racing-line segment decoding
//   - track/checksum.go: Trailing checksum calculation and validation
//
// Model and I/O:
//   - track/asset.go: TrackAsset assembly and conversion to the runtime Track
//   - track/model.go: Runtime model consumed by renderer, physics and AI
//   - track/loader.go: Whole-file loading with integrity diagnostics
//   - fixture/: Synthetic fixture generation for tests and tooling
//
// Basic usage:
//
//	trk, err := trackdat.LoadTrack("F1CT04.DAT", "Monaco")
//	if err != nil {
//		// structural or I/O failure; checksum mismatches only warn
//	}
//	fmt.Println(trk.Name, trk.Length, len(trk.Sections))
package trackdat
