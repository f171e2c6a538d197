package sources

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/planetary-society/missions/pkg/missions"
)

// Spreadsheet feed location and cache file name.
const (
	SpreadsheetURL      = "https://docs.google.com/spreadsheets/d/1ag7otfTfElrFz-yRZEdp-sLxlwkS_p7gRvnD1tVo7fE/export?format=csv"
	SpreadsheetFilename = "us_space_science_missions.csv"
)

// Spreadsheet column names.
const (
	colShortTitle      = "Short Title"
	colFullName        = "Full Name"
	colLaunchDate      = "Mission Launch Date"
	colPrimeEndDate    = "Primary Mission End Date"
	colMissionEndDate  = "Mission End Date"
	colFormulationDate = "Formulation Start Date"
	colSpacecraftCount = "# of spacecraft"
	colCOSPARID        = "COSPAR ID"
	colMass            = "Mass"
	colLaunchVehicle   = "Launch Vehicle"
	colMissionType     = "Mission Type"
	colNation          = "Nation"
	colCost            = "LCC (M$)"
	colProgram         = "Program"
	colDivision        = "Division"
	colTarget          = "Mission Target"
	colObjective       = "Mission Objective"
	colPageURL         = "url"
	colImageURL        = "image_url"
)

// Spreadsheet is the primary mission source, backed by a spreadsheet CSV
// export. It owns the core mission fields and rewrites them on every ingest.
type Spreadsheet struct {
	data *Dataset
	now  func() time.Time
}

// NewSpreadsheet creates a spreadsheet source over a dataset. A nil dataset
// behaves as empty.
func NewSpreadsheet(data *Dataset) *Spreadsheet {
	return &Spreadsheet{data: data, now: time.Now}
}

// WithClock overrides the time source used for status derivation and the
// last-updated stamp.
func (s *Spreadsheet) WithClock(now func() time.Time) *Spreadsheet {
	s.now = now
	return s
}

// ID returns the source identifier.
func (s *Spreadsheet) ID() ID {
	return SpreadsheetID
}

// Find looks up a mission row by its Short Title.
func (s *Spreadsheet) Find(key string) (Record, bool) {
	return s.data.Find(key, colShortTitle)
}

// Keys returns every mission short title present in the spreadsheet, in row
// order.
func (s *Spreadsheet) Keys() []string {
	return s.data.Column(colShortTitle)
}

// Enrich fills the mission's spreadsheet-owned fields from a raw row. The
// spacecraft list is rebuilt from the row's spacecraft count; only the first
// spacecraft carries the COSPAR ID, matching how the spreadsheet records it.
func (s *Spreadsheet) Enrich(m *missions.Mission, raw Record) error {
	launchDate := parseDatePtr(raw.Get(colLaunchDate))
	primeEnd := parseDatePtr(raw.Get(colPrimeEndDate))
	extendedEnd := parseDatePtr(raw.Get(colMissionEndDate))

	fullName := raw.Get(colFullName)
	if fullName == "" {
		fullName = "Unknown Mission"
	}
	shortName := raw.Get(colShortTitle)
	if shortName == "" {
		shortName = "Unknown"
	}

	m.CanonicalFullName = fullName
	m.CanonicalShortName = shortName
	m.NASAMissionPageURL = raw.Get(colPageURL)
	m.ImageURL = raw.Get(colImageURL)
	m.FormulationStartDate = parseDatePtr(raw.Get(colFormulationDate))
	m.PrimeMissionEndDate = primeEnd
	m.ExtendedMissionEndDate = extendedEnd
	m.Status = s.determineStatus(launchDate, primeEnd, extendedEnd)
	m.LifeCycleCost = parseCost(raw.Get(colCost))
	m.ProgramLine = raw.Get(colProgram)
	m.Division = raw.Get(colDivision)
	m.PrimaryTarget = raw.Get(colTarget)
	m.SponsorNations = splitNations(raw.Get(colNation))
	m.LastUpdated = missions.DateOf(s.now()).String()
	m.LaunchDate = launchDate

	// Description is NSSDCA-owned; the spreadsheet objective only seeds a
	// brand-new working record and never overwrites.
	if m.Description == "" {
		m.Description = raw.Get(colObjective)
	}

	missionType := raw.Get(colMissionType)
	count := parseSpacecraftCount(raw.Get(colSpacecraftCount))
	spacecraft := make([]missions.Spacecraft, 0, count)
	for i := 0; i < count; i++ {
		name := fullName
		if count > 1 {
			name = fmt.Sprintf("%s - Spacecraft %d", fullName, i+1)
		}
		sc := missions.Spacecraft{
			Name:           name,
			LaunchDate:     cloneDatePtr(launchDate),
			Mass:           parseMass(raw.Get(colMass)),
			LaunchVehicle:  raw.Get(colLaunchVehicle),
			SpacecraftType: missionType,
		}
		if i == 0 {
			sc.COSPARID = raw.Get(colCOSPARID)
		}
		spacecraft = append(spacecraft, sc)
	}
	m.Spacecraft = spacecraft

	return nil
}

// determineStatus derives the mission status from its launch and end dates.
func (s *Spreadsheet) determineStatus(launch, primeEnd, extendedEnd *missions.Date) missions.Status {
	if launch == nil {
		return missions.StatusDevelopment
	}

	today := missions.DateOf(s.now())

	if (primeEnd != nil && primeEnd.Before(today)) || (extendedEnd != nil && extendedEnd.Before(today)) {
		return missions.StatusCompleted
	}

	// Launched with no end dates on record means the mission is still flying.
	if launch.Before(today) && primeEnd == nil && extendedEnd == nil {
		return missions.StatusActive
	}

	return missions.StatusUnknown
}

var (
	costCleaner = regexp.MustCompile(`[^0-9.\-]`)
	massCleaner = regexp.MustCompile(`[^0-9.]`)
)

// parseDatePtr parses a date string, returning nil when empty or malformed.
func parseDatePtr(s string) *missions.Date {
	d, err := missions.ParseDate(s)
	if err != nil {
		return nil
	}
	return &d
}

func cloneDatePtr(d *missions.Date) *missions.Date {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}

// parseCost converts an "LCC (M$)" cell to USD.
func parseCost(s string) *float64 {
	clean := costCleaner.ReplaceAllString(s, "")
	if clean == "" {
		return nil
	}
	millions, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	usd := millions * 1_000_000
	return &usd
}

// parseMass converts a mass cell to whole kilograms.
func parseMass(s string) *int {
	clean := massCleaner.ReplaceAllString(s, "")
	if clean == "" {
		return nil
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	kg := int(f)
	return &kg
}

// parseSpacecraftCount parses the spacecraft count cell, defaulting to 1.
func parseSpacecraftCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// splitNations splits a "USA / ESA" style cell into individual nations.
func splitNations(s string) []string {
	if s == "" {
		return nil
	}
	var nations []string
	for _, part := range strings.Split(s, "/") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			nations = append(nations, trimmed)
		}
	}
	return nations
}
