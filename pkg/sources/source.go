// Package sources defines the data sources that feed the mission catalog.
// Each source wraps an in-memory tabular dataset and contributes a fixed,
// disjoint set of fields to a mission record: the spreadsheet export is the
// primary source and rewrites its fields on every ingest, while the NSSDCA
// catalog only fills gaps and extends lists. How a dataset was obtained
// (network fetch, cache file) is outside this package.
package sources

import (
	"github.com/planetary-society/missions/pkg/missions"
)

// ID represents the identifier of a data source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Known source IDs, in fixed merge priority order: the spreadsheet is
// queried first and its miss is fatal; secondary sources are applied after
// it, last write wins among them.
const (
	SpreadsheetID ID = "spreadsheet"
	NSSDCAID      ID = "nssdca"
)

// IDs returns all defined source IDs in priority order.
func IDs() []ID {
	return []ID{SpreadsheetID, NSSDCAID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	for _, known := range IDs() {
		if id == known {
			return true
		}
	}
	return false
}

// Source is a mission data source. Find performs an exact, case-insensitive
// lookup against the source's identity columns and reports whether a row
// matched; ties resolve to the first matching row in dataset order. Enrich
// copies the raw row's data onto the mission, touching only fields this
// source owns, and must be idempotent: enriching twice with the same row
// yields the same mission as enriching once.
type Source interface {
	// ID returns the identifier of this source
	ID() ID

	// Find looks up a raw record by key; ok is false when there is no match
	// or the underlying dataset could not be loaded
	Find(key string) (raw Record, ok bool)

	// Enrich applies a raw record onto the mission
	Enrich(m *missions.Mission, raw Record) error
}
