package sources_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planetary-society/missions/pkg/missions"
	"github.com/planetary-society/missions/pkg/sources"
)

// fixedNow pins the clock for status derivation and last-updated stamps.
var fixedNow = func() time.Time {
	return time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
}

func newSpreadsheet(row sources.Record) *sources.Spreadsheet {
	columns := make([]string, 0, len(row))
	for k := range row {
		columns = append(columns, k)
	}
	data := sources.NewDataset(columns, []sources.Record{row})
	return sources.NewSpreadsheet(data).WithClock(fixedNow)
}

func TestSpreadsheetEnrich(t *testing.T) {
	s := newSpreadsheet(sources.Record{
		"Short Title":         "MRO",
		"Full Name":           "Mars Reconnaissance Orbiter",
		"Mission Launch Date": "8/12/2005",
		"# of spacecraft":     "1",
		"COSPAR ID":           "2005-029A",
		"Mass":                "2,180 kg",
		"Launch Vehicle":      "Atlas V 401",
		"Mission Type":        "Orbiter",
		"Nation":              "USA",
		"LCC (M$)":            "$720.9",
		"Program":             "Mars Exploration",
		"Division":            "Planetary Science",
		"Mission Target":      "Mars",
		"Mission Objective":   "Study the Martian atmosphere and surface.",
		"url":                 "https://science.nasa.gov/mission/mro/",
	})

	raw, ok := s.Find("mro")
	require.True(t, ok, "short title lookup is case-insensitive")

	var m missions.Mission
	require.NoError(t, s.Enrich(&m, raw))

	assert.Equal(t, "Mars Reconnaissance Orbiter", m.CanonicalFullName)
	assert.Equal(t, "MRO", m.CanonicalShortName)
	assert.Equal(t, "Mars", m.PrimaryTarget)
	assert.Equal(t, []string{"USA"}, m.SponsorNations)
	assert.Equal(t, "Study the Martian atmosphere and surface.", m.Description)
	assert.Equal(t, "2026-08-31", m.LastUpdated)

	require.NotNil(t, m.LaunchDate)
	assert.Equal(t, "2005-08-12", m.LaunchDate.String())
	assert.Equal(t, missions.StatusActive, m.Status, "launched with no end dates on record")

	require.NotNil(t, m.LifeCycleCost)
	assert.InDelta(t, 720_900_000, *m.LifeCycleCost, 0.1)

	require.Len(t, m.Spacecraft, 1)
	sc := m.Spacecraft[0]
	assert.Equal(t, "Mars Reconnaissance Orbiter", sc.Name)
	assert.Equal(t, "2005-029A", sc.COSPARID)
	assert.Equal(t, "Orbiter", sc.SpacecraftType)
	require.NotNil(t, sc.Mass)
	assert.Equal(t, 2180, *sc.Mass)
}

func TestSpreadsheetEnrichMultipleSpacecraft(t *testing.T) {
	s := newSpreadsheet(sources.Record{
		"Short Title":     "Van Allen Probes",
		"Full Name":       "Van Allen Probes",
		"# of spacecraft": "2",
		"COSPAR ID":       "2012-046A",
	})

	raw, _ := s.Find("Van Allen Probes")
	var m missions.Mission
	require.NoError(t, s.Enrich(&m, raw))

	require.Len(t, m.Spacecraft, 2)
	assert.Equal(t, "Van Allen Probes - Spacecraft 1", m.Spacecraft[0].Name)
	assert.Equal(t, "Van Allen Probes - Spacecraft 2", m.Spacecraft[1].Name)
	assert.Equal(t, "2012-046A", m.Spacecraft[0].COSPARID)
	assert.Empty(t, m.Spacecraft[1].COSPARID, "only the first spacecraft carries the export's COSPAR ID")
}

func TestSpreadsheetEnrichPreservesSeededDescription(t *testing.T) {
	s := newSpreadsheet(sources.Record{
		"Short Title":       "MRO",
		"Full Name":         "Mars Reconnaissance Orbiter",
		"Mission Objective": "Objective text.",
	})
	raw, _ := s.Find("MRO")

	m := missions.Mission{Description: "Already described."}
	require.NoError(t, s.Enrich(&m, raw))
	assert.Equal(t, "Already described.", m.Description, "objective only seeds an empty description")
}

func TestSpreadsheetStatus(t *testing.T) {
	tests := []struct {
		name   string
		row    sources.Record
		status missions.Status
	}{
		{
			name:   "no launch date means in development",
			row:    sources.Record{"Short Title": "X", "Full Name": "X"},
			status: missions.StatusDevelopment,
		},
		{
			name: "past end date means completed",
			row: sources.Record{
				"Short Title":              "X",
				"Full Name":                "X",
				"Mission Launch Date":      "10/15/1997",
				"Primary Mission End Date": "9/15/2017",
			},
			status: missions.StatusCompleted,
		},
		{
			name: "launched with no end dates means active",
			row: sources.Record{
				"Short Title":         "X",
				"Full Name":           "X",
				"Mission Launch Date": "8/5/2011",
			},
			status: missions.StatusActive,
		},
		{
			name: "future end date is indeterminate",
			row: sources.Record{
				"Short Title":              "X",
				"Full Name":                "X",
				"Mission Launch Date":      "8/5/2011",
				"Primary Mission End Date": "12/31/2099",
			},
			status: missions.StatusUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSpreadsheet(tt.row)
			raw, ok := s.Find("X")
			require.True(t, ok)

			var m missions.Mission
			require.NoError(t, s.Enrich(&m, raw))
			assert.Equal(t, tt.status, m.Status)
		})
	}
}

func TestSpreadsheetDefaults(t *testing.T) {
	s := newSpreadsheet(sources.Record{"Short Title": "X"})
	raw, _ := s.Find("X")

	var m missions.Mission
	require.NoError(t, s.Enrich(&m, raw))

	assert.Equal(t, "Unknown Mission", m.CanonicalFullName)
	assert.Nil(t, m.LifeCycleCost)
	require.Len(t, m.Spacecraft, 1, "spacecraft count defaults to 1")
	assert.Nil(t, m.Spacecraft[0].Mass)
}

func TestSpreadsheetKeys(t *testing.T) {
	data := sources.NewDataset(
		[]string{"Short Title"},
		[]sources.Record{{"Short Title": "HST"}, {"Short Title": "JWST"}},
	)
	s := sources.NewSpreadsheet(data)
	assert.Equal(t, sources.SpreadsheetID, s.ID())
	assert.Equal(t, []string{"HST", "JWST"}, s.Keys())
}

func TestSplitNations(t *testing.T) {
	s := newSpreadsheet(sources.Record{
		"Short Title": "Cassini",
		"Full Name":   "Cassini-Huygens",
		"Nation":      "USA / ESA / Italy",
	})
	raw, _ := s.Find("Cassini")

	var m missions.Mission
	require.NoError(t, s.Enrich(&m, raw))
	assert.Equal(t, []string{"USA", "ESA", "Italy"}, m.SponsorNations)
}
