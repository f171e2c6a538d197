package sources

import (
	"strings"

	"github.com/planetary-society/missions/pkg/missions"
)

// NSSDCA catalog feed location and cache file name.
const (
	NSSDCAURL      = "https://raw.githubusercontent.com/planetary-society/nssdca-catalog-scraper/3577a60c1032c2224a2ea280345b1f01548d2631/data/all_spacecraft_list.csv"
	NSSDCAFilename = "nssdca_catalog.csv"
)

// NSSDCA catalog column names.
const (
	colNSSDCID       = "nssdc_id"
	colNSSDCCOSPARID = "cospar_id"
	colNSSDCName     = "name"
	colNSSDCDesc     = "description"
	colNSSDCAltNames = "alternate_names"
)

// NSSDCA is the secondary source, backed by the NSSDCA spacecraft catalog.
// It fills in a description when the record has none, extends the
// alternative-names list, and backfills spacecraft NSSDCA IDs. It never
// clears or replaces data already present.
type NSSDCA struct {
	data *Dataset
}

// NewNSSDCA creates an NSSDCA source over a dataset. A nil dataset behaves
// as empty.
func NewNSSDCA(data *Dataset) *NSSDCA {
	return &NSSDCA{data: data}
}

// ID returns the source identifier.
func (n *NSSDCA) ID() ID {
	return NSSDCAID
}

// Find looks up a catalog row by NSSDC ID, COSPAR ID, or spacecraft name.
func (n *NSSDCA) Find(key string) (Record, bool) {
	return n.data.Find(key, colNSSDCID, colNSSDCCOSPARID, colNSSDCName)
}

// Enrich applies a catalog row onto the mission. All writes are monotonic:
// the description is set only when empty, alternative names are unioned in
// order of first appearance, and spacecraft NSSDCA IDs are set only where
// missing.
func (n *NSSDCA) Enrich(m *missions.Mission, raw Record) error {
	if m.Description == "" && raw.Has(colNSSDCDesc) {
		m.Description = raw.Get(colNSSDCDesc)
	}

	if raw.Has(colNSSDCAltNames) {
		for _, name := range splitAltNames(raw.Get(colNSSDCAltNames)) {
			if !containsString(m.AlternativeNames, name) {
				m.AlternativeNames = append(m.AlternativeNames, name)
			}
		}
	}

	// Backfill spacecraft NSSDCA IDs keyed by COSPAR ID.
	if raw.Has(colNSSDCCOSPARID) && raw.Has(colNSSDCID) {
		cospar := raw.Get(colNSSDCCOSPARID)
		for i := range m.Spacecraft {
			if m.Spacecraft[i].COSPARID == cospar && m.Spacecraft[i].NSSDCAID == "" {
				m.Spacecraft[i].NSSDCAID = raw.Get(colNSSDCID)
			}
		}
	}

	return nil
}

// splitAltNames splits a comma-separated alternate-names cell.
func splitAltNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
