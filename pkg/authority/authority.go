// Package authority defines which source may write each mission field and
// under what merge strategy. The table is static configuration: a field never
// changes ownership class at runtime, and fields with no entry are curated by
// hand and pass through every merge untouched.
package authority

import (
	"github.com/planetary-society/missions/pkg/missions"
	"github.com/planetary-society/missions/pkg/sources"
)

// Strategy describes how an owned field merges into an existing record.
type Strategy string

const (
	// Overwrite replaces the existing value with the incoming one on every
	// merge, even when the incoming value is empty.
	Overwrite Strategy = "overwrite"

	// FillOnly sets the incoming value only when the existing one is absent
	// (empty string, empty list, or nil); once populated it is never
	// replaced or cleared.
	FillOnly Strategy = "fill_only"

	// ListUnion appends incoming list entries not already present,
	// preserving existing order, and never removes an entry.
	ListUnion Strategy = "list_union"
)

// Field assigns one mission field to its owning source and merge strategy.
type Field struct {
	Name     string
	Source   sources.ID
	Strategy Strategy
}

// Mission field names, as they appear in the persisted record.
const (
	FieldCanonicalFullName      = "canonical_full_name"
	FieldCanonicalShortName     = "canonical_short_name"
	FieldAlternativeNames       = "alternative_names"
	FieldNASAMissionPageURL     = "nasa_mission_page_url"
	FieldImageURL               = "image_url"
	FieldFormulationStartDate   = "formulation_start_date"
	FieldPrimeMissionEndDate    = "prime_mission_end_date"
	FieldExtendedMissionEndDate = "extended_mission_end_date"
	FieldStatus                 = "status"
	FieldLifeCycleCost          = "life_cycle_cost"
	FieldProgramLine            = "program_line"
	FieldDivision               = "division"
	FieldPrimaryTarget          = "primary_target"
	FieldSponsorNations         = "sponsor_nations"
	FieldDescription            = "description"
	FieldLastUpdated            = "last_updated"
	FieldLaunchDate             = "launch_date"

	// FieldSpacecraft is spreadsheet-owned but excluded from the generic
	// merge loop; the reconcile package matches spacecraft by identity key
	// instead.
	FieldSpacecraft = "spacecraft"
)

// Policy is a static field-ownership table consulted by one generic merge
// function.
type Policy struct {
	fields []Field
}

// New creates a policy from explicit field assignments.
func New(fields ...Field) *Policy {
	return &Policy{fields: fields}
}

// Default returns the standard mission field authorities.
func Default() *Policy {
	return New(
		// Spreadsheet-owned: rewritten from the latest export on every merge.
		Field{Name: FieldCanonicalFullName, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldCanonicalShortName, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldNASAMissionPageURL, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldImageURL, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldFormulationStartDate, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldPrimeMissionEndDate, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldExtendedMissionEndDate, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldStatus, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldLifeCycleCost, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldProgramLine, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldDivision, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldPrimaryTarget, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldSponsorNations, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldLastUpdated, Source: sources.SpreadsheetID, Strategy: Overwrite},
		Field{Name: FieldLaunchDate, Source: sources.SpreadsheetID, Strategy: Overwrite},

		// NSSDCA-owned: monotonic, never clears existing data.
		Field{Name: FieldDescription, Source: sources.NSSDCAID, Strategy: FillOnly},
		Field{Name: FieldAlternativeNames, Source: sources.NSSDCAID, Strategy: ListUnion},
	)
}

// Find returns the authority entry for a field, or nil for unowned fields.
func (p *Policy) Find(name string) *Field {
	for i := range p.fields {
		if p.fields[i].Name == name {
			return &p.fields[i]
		}
	}
	return nil
}

// List returns the fields owned by a source.
func (p *Policy) List(source sources.ID) []Field {
	var owned []Field
	for _, f := range p.fields {
		if f.Source == source {
			owned = append(owned, f)
		}
	}
	return owned
}

// Apply merges the fields owned by source from incoming into a copy of
// existing, per each field's strategy. Fields owned by other sources and
// unowned fields are preserved verbatim regardless of the incoming values.
// The spacecraft list is not touched here.
func (p *Policy) Apply(existing, incoming *missions.Mission, source sources.ID) *missions.Mission {
	out := existing.Clone()
	for _, f := range p.fields {
		if f.Source != source {
			continue
		}
		applyField(f, out, incoming)
	}
	return out
}

// applyField merges a single owned field from src into dst.
func applyField(f Field, dst, src *missions.Mission) {
	switch f.Name {
	case FieldCanonicalFullName:
		dst.CanonicalFullName = mergeString(f.Strategy, dst.CanonicalFullName, src.CanonicalFullName)
	case FieldCanonicalShortName:
		dst.CanonicalShortName = mergeString(f.Strategy, dst.CanonicalShortName, src.CanonicalShortName)
	case FieldAlternativeNames:
		dst.AlternativeNames = mergeStringList(f.Strategy, dst.AlternativeNames, src.AlternativeNames)
	case FieldNASAMissionPageURL:
		dst.NASAMissionPageURL = mergeString(f.Strategy, dst.NASAMissionPageURL, src.NASAMissionPageURL)
	case FieldImageURL:
		dst.ImageURL = mergeString(f.Strategy, dst.ImageURL, src.ImageURL)
	case FieldFormulationStartDate:
		dst.FormulationStartDate = mergeDatePtr(f.Strategy, dst.FormulationStartDate, src.FormulationStartDate)
	case FieldPrimeMissionEndDate:
		dst.PrimeMissionEndDate = mergeDatePtr(f.Strategy, dst.PrimeMissionEndDate, src.PrimeMissionEndDate)
	case FieldExtendedMissionEndDate:
		dst.ExtendedMissionEndDate = mergeDatePtr(f.Strategy, dst.ExtendedMissionEndDate, src.ExtendedMissionEndDate)
	case FieldStatus:
		dst.Status = missions.Status(mergeString(f.Strategy, string(dst.Status), string(src.Status)))
	case FieldLifeCycleCost:
		dst.LifeCycleCost = mergeFloatPtr(f.Strategy, dst.LifeCycleCost, src.LifeCycleCost)
	case FieldProgramLine:
		dst.ProgramLine = mergeString(f.Strategy, dst.ProgramLine, src.ProgramLine)
	case FieldDivision:
		dst.Division = mergeString(f.Strategy, dst.Division, src.Division)
	case FieldPrimaryTarget:
		dst.PrimaryTarget = mergeString(f.Strategy, dst.PrimaryTarget, src.PrimaryTarget)
	case FieldSponsorNations:
		dst.SponsorNations = mergeStringList(f.Strategy, dst.SponsorNations, src.SponsorNations)
	case FieldDescription:
		dst.Description = mergeString(f.Strategy, dst.Description, src.Description)
	case FieldLastUpdated:
		dst.LastUpdated = mergeString(f.Strategy, dst.LastUpdated, src.LastUpdated)
	case FieldLaunchDate:
		dst.LaunchDate = mergeDatePtr(f.Strategy, dst.LaunchDate, src.LaunchDate)
	}
}

// Absent means empty string, empty list, or nil. Numeric zero is present.

func mergeString(s Strategy, old, incoming string) string {
	switch s {
	case Overwrite:
		return incoming
	case FillOnly:
		if old == "" && incoming != "" {
			return incoming
		}
	}
	return old
}

func mergeStringList(s Strategy, old, incoming []string) []string {
	switch s {
	case Overwrite:
		if incoming == nil {
			return nil
		}
		out := make([]string, len(incoming))
		copy(out, incoming)
		return out
	case FillOnly:
		if len(old) == 0 && len(incoming) > 0 {
			out := make([]string, len(incoming))
			copy(out, incoming)
			return out
		}
	case ListUnion:
		out := make([]string, len(old), len(old)+len(incoming))
		copy(out, old)
		for _, v := range incoming {
			if !containsString(out, v) {
				out = append(out, v)
			}
		}
		if len(out) == 0 {
			return old
		}
		return out
	}
	return old
}

func mergeDatePtr(s Strategy, old, incoming *missions.Date) *missions.Date {
	switch s {
	case Overwrite:
		return cloneDate(incoming)
	case FillOnly:
		if old == nil && incoming != nil {
			return cloneDate(incoming)
		}
	}
	return old
}

func mergeFloatPtr(s Strategy, old, incoming *float64) *float64 {
	switch s {
	case Overwrite:
		if incoming == nil {
			return nil
		}
		v := *incoming
		return &v
	case FillOnly:
		if old == nil && incoming != nil {
			v := *incoming
			return &v
		}
	}
	return old
}

func cloneDate(d *missions.Date) *missions.Date {
	if d == nil {
		return nil
	}
	copied := *d
	return &copied
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
