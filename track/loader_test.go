package track_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retrosim/go-trackdat/fixture"
	"github.com/retrosim/go-trackdat/track"
)

func writeFixtureFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, fixture.TrackBytes(5, 0x1100), 0o644))
	return path
}

func TestLoadTrack(t *testing.T) {
	path := writeFixtureFile(t, "F1CT04.DAT")

	trk, err := track.LoadTrack(path, "Monaco")
	require.NoError(t, err)
	assert.Equal(t, "Monaco", trk.Name)
	assert.Len(t, trk.Sections, 5)
}

func TestLoadTrackNameFromStem(t *testing.T) {
	path := writeFixtureFile(t, "F1CT04.DAT")

	trk, err := track.LoadTrack(path, "")
	require.NoError(t, err)
	assert.Equal(t, "F1CT04", trk.Name)
}

func TestLoadTrackMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.dat")
	_, err := track.LoadTrack(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadTrackCorruptChecksumStillLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worn.dat")
	data := fixture.TrackBytes(5, 0x1100)
	data[len(data)-1] ^= 0xFF
	require.NoError(t, os.WriteFile(path, data, 0o644))

	asset, err := track.LoadTrackAsset(path, "")
	require.NoError(t, err)
	assert.Len(t, asset.Warnings, 1)
	assert.Len(t, asset.Sections, 5)
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		path string
		name string
		want string
	}{
		{"tracks/F1CT04.DAT", "Monaco", "Monaco"},
		{"tracks/F1CT04.DAT", "", "F1CT04"},
		{"F1CT11.dat", "", "F1CT11"},
		{".dat", "", "Unknown"},
		{"", "", "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, track.ResolveName(tt.path, tt.name), "path=%q name=%q", tt.path, tt.name)
	}
}
