// Package missions defines the canonical mission record model and its
// file-backed store. A mission is persisted as a single human-editable YAML
// file; fields set by hand survive every source merge, so the model and its
// serialization must round-trip without loss.
package missions

// Spacecraft is a vehicle belonging to a mission. Spacecraft are matched
// across merges by COSPAR ID; entries without one can only ever be appended,
// never merged.
type Spacecraft struct {
	Name           string `yaml:"name" json:"name"`
	ShortName      string `yaml:"short_name,omitempty" json:"short_name,omitempty"`
	COSPARID       string `yaml:"COSPAR_id,omitempty" json:"COSPAR_id,omitempty"`
	NSSDCAID       string `yaml:"NSSDCA_id,omitempty" json:"NSSDCA_id,omitempty"`
	SpacecraftType string `yaml:"spacecraft_type,omitempty" json:"spacecraft_type,omitempty"`
	LaunchDate     *Date  `yaml:"launch_date,omitempty" json:"launch_date,omitempty"`
	MissionEndDate *Date  `yaml:"mission_end_date,omitempty" json:"mission_end_date,omitempty"`
	Mass           *int   `yaml:"mass,omitempty" json:"mass,omitempty"` // kg
	LaunchVehicle  string `yaml:"launch_vehicle,omitempty" json:"launch_vehicle,omitempty"`
}

// Clone returns a deep copy of the spacecraft.
func (s Spacecraft) Clone() Spacecraft {
	out := s
	if s.LaunchDate != nil {
		d := *s.LaunchDate
		out.LaunchDate = &d
	}
	if s.MissionEndDate != nil {
		d := *s.MissionEndDate
		out.MissionEndDate = &d
	}
	if s.Mass != nil {
		m := *s.Mass
		out.Mass = &m
	}
	return out
}

// Mission is the canonical record for one mission. Field ownership is split
// three ways: spreadsheet-owned fields are rewritten on every ingest,
// NSSDCA-owned fields fill in or union without ever clearing data, and
// curated fields (wikipedia_url, award_ids, funding links, short names) are
// never touched by any source.
type Mission struct {
	CanonicalFullName  string `yaml:"canonical_full_name" json:"canonical_full_name"`
	CanonicalShortName string `yaml:"canonical_short_name" json:"canonical_short_name"` // usually an acronym

	AlternativeNames      []string `yaml:"alternative_names,omitempty" json:"alternative_names,omitempty"`
	AlternativeShortNames []string `yaml:"alternative_short_names,omitempty" json:"alternative_short_names,omitempty"`

	NASAMissionPageURL string `yaml:"nasa_mission_page_url,omitempty" json:"nasa_mission_page_url,omitempty"`
	WikipediaURL       string `yaml:"wikipedia_url,omitempty" json:"wikipedia_url,omitempty"`
	ImageURL           string `yaml:"image_url,omitempty" json:"image_url,omitempty"`

	FundingChartURL         string `yaml:"funding_chart_url,omitempty" json:"funding_chart_url,omitempty"`
	FundingReferenceDataURL string `yaml:"funding_reference_data_url,omitempty" json:"funding_reference_data_url,omitempty"`

	FormulationStartDate   *Date `yaml:"formulation_start_date,omitempty" json:"formulation_start_date,omitempty"`
	DevelopmentStartDate   *Date `yaml:"development_start_date,omitempty" json:"development_start_date,omitempty"`
	PrimeMissionEndDate    *Date `yaml:"prime_mission_end_date,omitempty" json:"prime_mission_end_date,omitempty"`
	ExtendedMissionEndDate *Date `yaml:"extended_mission_end_date,omitempty" json:"extended_mission_end_date,omitempty"`

	Status         Status   `yaml:"status" json:"status"`
	LifeCycleCost  *float64 `yaml:"life_cycle_cost,omitempty" json:"life_cycle_cost,omitempty"` // USD
	ProgramLine    string   `yaml:"program_line,omitempty" json:"program_line,omitempty"`
	Division       string   `yaml:"division,omitempty" json:"division,omitempty"`
	PrimaryTarget  string   `yaml:"primary_target,omitempty" json:"primary_target,omitempty"`
	SponsorNations []string `yaml:"sponsor_nations,omitempty" json:"sponsor_nations,omitempty"`
	Description    string   `yaml:"description" json:"description"`
	LastUpdated    string   `yaml:"last_updated" json:"last_updated"` // YYYY-MM-DD

	AwardIDs []string `yaml:"award_ids,omitempty" json:"award_ids,omitempty"`

	// Launch date of the mission, or of the first spacecraft if multiple.
	LaunchDate *Date `yaml:"launch_date,omitempty" json:"launch_date,omitempty"`

	Spacecraft []Spacecraft `yaml:"spacecraft" json:"spacecraft"`
}

// Clone returns a deep copy of the mission.
func (m *Mission) Clone() *Mission {
	if m == nil {
		return nil
	}
	out := *m
	out.AlternativeNames = cloneStrings(m.AlternativeNames)
	out.AlternativeShortNames = cloneStrings(m.AlternativeShortNames)
	out.SponsorNations = cloneStrings(m.SponsorNations)
	out.AwardIDs = cloneStrings(m.AwardIDs)
	out.FormulationStartDate = cloneDate(m.FormulationStartDate)
	out.DevelopmentStartDate = cloneDate(m.DevelopmentStartDate)
	out.PrimeMissionEndDate = cloneDate(m.PrimeMissionEndDate)
	out.ExtendedMissionEndDate = cloneDate(m.ExtendedMissionEndDate)
	out.LaunchDate = cloneDate(m.LaunchDate)
	if m.LifeCycleCost != nil {
		c := *m.LifeCycleCost
		out.LifeCycleCost = &c
	}
	if m.Spacecraft != nil {
		out.Spacecraft = make([]Spacecraft, len(m.Spacecraft))
		for i, sc := range m.Spacecraft {
			out.Spacecraft[i] = sc.Clone()
		}
	}
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneDate(in *Date) *Date {
	if in == nil {
		return nil
	}
	d := *in
	return &d
}
