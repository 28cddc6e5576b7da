// loader.go - Loading tracks from disk
package track

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/retrosim/go-trackdat/log"
)

// ResolveName picks the display name for a track: the explicit name when
// given, else the filename stem, else "Unknown".
func ResolveName(path, name string) string {
	if name != "" {
		return name
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem != "" && stem != "." && stem != string(filepath.Separator) {
		return stem
	}
	return "Unknown"
}

// LoadTrackAsset reads a track file in one shot and parses it. Integrity
// warnings are logged and kept on the asset; only I/O and structural failures
// return an error.
func LoadTrackAsset(path, name string) (*TrackAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read track file %s: %w", path, err)
	}
	resolved := ResolveName(path, name)
	asset, err := ParseTrackAsset(data, resolved)
	if err != nil {
		return nil, err
	}
	for _, w := range asset.Warnings {
		log.Logger.Warn(w, zap.String("track", resolved), zap.String("path", path))
	}
	return asset, nil
}

// LoadTrack loads a file and converts it straight to the runtime model.
func LoadTrack(path, name string) (Track, error) {
	asset, err := LoadTrackAsset(path, name)
	if err != nil {
		return Track{}, err
	}
	return asset.IntoTrack(), nil
}
