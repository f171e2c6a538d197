package reconcile

import (
	"github.com/planetary-society/missions/pkg/missions"
)

// MatchSpacecraft merges an incoming spacecraft list into an existing one.
// Spacecraft are matched by exact COSPAR ID equality; identity is used only
// for matching, never for ordering. Matched entries get the incoming
// source-managed fields overwritten onto a copy of the existing entry, each
// match is consumed at most once, and unmatched incoming entries are emitted
// as new observations. Existing entries that found no match — including every
// entry without a COSPAR ID — are appended afterwards in their original
// relative order, so curated spacecraft are never merged away.
func MatchSpacecraft(existing, incoming []missions.Spacecraft) []missions.Spacecraft {
	if len(existing) == 0 {
		return cloneSpacecraftList(incoming)
	}
	if len(incoming) == 0 {
		return cloneSpacecraftList(existing)
	}

	// Lookup from COSPAR ID to existing index; keyless entries are excluded
	// and always remain.
	byID := make(map[string]int, len(existing))
	for i, sc := range existing {
		if sc.COSPARID == "" {
			continue
		}
		if _, dup := byID[sc.COSPARID]; !dup {
			byID[sc.COSPARID] = i
		}
	}

	consumed := make(map[int]bool, len(existing))
	out := make([]missions.Spacecraft, 0, len(existing)+len(incoming))

	for _, n := range incoming {
		if n.COSPARID != "" {
			if idx, ok := byID[n.COSPARID]; ok {
				out = append(out, mergeSpacecraft(existing[idx], n))
				consumed[idx] = true
				delete(byID, n.COSPARID)
				continue
			}
		}
		out = append(out, n.Clone())
	}

	for i, sc := range existing {
		if !consumed[i] {
			out = append(out, sc.Clone())
		}
	}

	return out
}

// mergeSpacecraft overwrites the source-managed fields of base with the
// values present in incoming. Curated fields (short name, mission end date)
// pass through untouched.
func mergeSpacecraft(base, incoming missions.Spacecraft) missions.Spacecraft {
	out := base.Clone()
	if incoming.Name != "" {
		out.Name = incoming.Name
	}
	if incoming.COSPARID != "" {
		out.COSPARID = incoming.COSPARID
	}
	if incoming.NSSDCAID != "" {
		out.NSSDCAID = incoming.NSSDCAID
	}
	if incoming.SpacecraftType != "" {
		out.SpacecraftType = incoming.SpacecraftType
	}
	if incoming.LaunchDate != nil {
		d := *incoming.LaunchDate
		out.LaunchDate = &d
	}
	if incoming.Mass != nil {
		m := *incoming.Mass
		out.Mass = &m
	}
	if incoming.LaunchVehicle != "" {
		out.LaunchVehicle = incoming.LaunchVehicle
	}
	return out
}

func cloneSpacecraftList(in []missions.Spacecraft) []missions.Spacecraft {
	out := make([]missions.Spacecraft, len(in))
	for i, sc := range in {
		out[i] = sc.Clone()
	}
	return out
}
