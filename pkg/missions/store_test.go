package missions_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary-society/missions/pkg/errors"
	"github.com/planetary-society/missions/pkg/missions"
)

func TestStoreSaveLoad(t *testing.T) {
	store := missions.NewStore(t.TempDir())
	m := validMission()
	m.WikipediaURL = "https://en.wikipedia.org/wiki/New_Horizons"
	m.AlternativeNames = []string{"NF1", "Pluto-Kuiper Belt Mission"}
	end := missions.NewDate(2016, time.October, 25)
	m.Spacecraft[0].MissionEndDate = &end

	require.NoError(t, store.Save(m))

	loaded, err := store.Load("New Horizons")
	require.NoError(t, err)

	assert.Equal(t, m.CanonicalFullName, loaded.CanonicalFullName)
	assert.Equal(t, m.WikipediaURL, loaded.WikipediaURL)
	assert.Equal(t, m.AlternativeNames, loaded.AlternativeNames)
	assert.Equal(t, m.Description, loaded.Description)

	require.NotNil(t, loaded.LaunchDate)
	assert.Equal(t, "2006-01-19", loaded.LaunchDate.String())
	require.NotNil(t, loaded.LifeCycleCost)
	assert.Equal(t, *m.LifeCycleCost, *loaded.LifeCycleCost)

	require.Len(t, loaded.Spacecraft, 1)
	assert.Equal(t, "2006-001A", loaded.Spacecraft[0].COSPARID)
	require.NotNil(t, loaded.Spacecraft[0].MissionEndDate)
	assert.Equal(t, "2016-10-25", loaded.Spacecraft[0].MissionEndDate.String())
}

func TestStorePath(t *testing.T) {
	store := missions.NewStore("/data/missions")
	assert.Equal(t, filepath.Join("/data/missions", "new-horizons.yaml"), store.Path("New Horizons"))
}

func TestStoreLoadNotFound(t *testing.T) {
	store := missions.NewStore(t.TempDir())
	_, err := store.Load("Nonexistent")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := missions.NewStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{unclosed: ["), 0o644))

	_, err := store.Load("Broken")
	require.Error(t, err)
	assert.False(t, errors.IsNotFound(err), "a corrupt file is not a missing record")
}

func TestStoreSaveRejectsInvalid(t *testing.T) {
	store := missions.NewStore(t.TempDir())
	m := validMission()
	m.Spacecraft = nil

	require.Error(t, store.Save(m))

	_, err := os.Stat(store.Path(m.CanonicalShortName))
	assert.True(t, os.IsNotExist(err))
}

func TestStoreList(t *testing.T) {
	store := missions.NewStore(t.TempDir())

	t.Run("missing directory", func(t *testing.T) {
		names, err := missions.NewStore(filepath.Join(t.TempDir(), "nope")).List()
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	m1 := validMission()
	require.NoError(t, store.Save(m1))

	m2 := validMission()
	m2.CanonicalShortName = "ACE"
	require.NoError(t, store.Save(m2))

	// Only .yaml records are loadable, so only they are listed.
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "stray.yml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("x"), 0o644))

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"ace", "new-horizons"}, names)
}

func TestFormatYAML(t *testing.T) {
	m := validMission()
	m.Description = "Line one.\nLine two."

	out := m.FormatYAML()

	assert.True(t, strings.HasPrefix(out, "# New Horizons (New Horizons)"), "header comment names the mission")
	assert.Contains(t, out, "canonical_short_name: New Horizons")
	assert.Contains(t, out, "status: Active")
	assert.Contains(t, out, "description: |-", "multiline descriptions use a block scalar")

	// The formatted output must round-trip.
	back, err := missions.UnmarshalMission([]byte(out), "test.yaml")
	require.NoError(t, err)
	assert.Equal(t, m.Description, back.Description)
	assert.Equal(t, m.Status, back.Status)
}
