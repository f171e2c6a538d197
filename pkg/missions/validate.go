package missions

import (
	"github.com/planetary-society/missions/pkg/errors"
)

// Validate checks the static invariants a record must satisfy before it may
// be persisted. The reconciliation engine calls this as its final gate: a
// violation aborts the run and the previously persisted record is left
// untouched.
func (m *Mission) Validate() error {
	if m == nil {
		return errors.NewValidationError("", nil, "mission is nil")
	}
	if m.CanonicalFullName == "" {
		return errors.NewValidationError("canonical_full_name", m.CanonicalFullName, "required")
	}
	if m.CanonicalShortName == "" {
		return errors.NewValidationError("canonical_short_name", m.CanonicalShortName, "required")
	}
	if !m.Status.IsValid() {
		return errors.NewValidationError("status", m.Status, "unknown status value")
	}
	if m.LifeCycleCost != nil && *m.LifeCycleCost < 0 {
		return errors.NewValidationError("life_cycle_cost", *m.LifeCycleCost, "must be non-negative")
	}
	if len(m.Spacecraft) == 0 {
		return errors.NewValidationError("spacecraft", nil, "mission must have at least one spacecraft")
	}
	for i, sc := range m.Spacecraft {
		if sc.Name == "" {
			return errors.NewValidationError("spacecraft.name", i, "spacecraft name is required")
		}
	}
	return nil
}
