// Package reconcile implements the multi-source record reconciliation
// engine. One run covers one mission: the primary source builds a working
// record, secondary sources enrich it, and if a record is already persisted
// the working record is merged into it under the field-ownership policy,
// with spacecraft matched by identity key. The merge is computed fully in
// memory and the save is the last step, so a failed run never leaves a
// partially written record behind.
package reconcile

import (
	"context"
	"fmt"

	"github.com/planetary-society/missions/pkg/authority"
	"github.com/planetary-society/missions/pkg/errors"
	"github.com/planetary-society/missions/pkg/logging"
	"github.com/planetary-society/missions/pkg/missions"
	"github.com/planetary-society/missions/pkg/sources"
	"golang.org/x/sync/errgroup"
)

// Reconciler reconciles mission observations into persisted records.
type Reconciler struct {
	primary     sources.Source
	secondaries []sources.Source
	policy      *authority.Policy
	store       *missions.Store
	force       bool
}

// Option configures a Reconciler.
type Option func(*Reconciler) error

// New creates a Reconciler for the given primary source and record store.
func New(primary sources.Source, store *missions.Store, opts ...Option) (*Reconciler, error) {
	if primary == nil {
		return nil, fmt.Errorf("primary source cannot be nil")
	}
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	r := &Reconciler{
		primary: primary,
		policy:  authority.Default(),
		store:   store,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// WithSecondaries sets the secondary sources, in fixed merge priority order.
// When two secondaries both supply a field the later one wins.
func WithSecondaries(secondaries ...sources.Source) Option {
	return func(r *Reconciler) error {
		r.secondaries = secondaries
		return nil
	}
}

// WithPolicy sets a custom field-ownership policy.
func WithPolicy(policy *authority.Policy) Option {
	return func(r *Reconciler) error {
		if policy == nil {
			return fmt.Errorf("policy cannot be nil")
		}
		r.policy = policy
		return nil
	}
}

// WithForceOverwrite makes every run bypass the merge-with-existing step:
// the working record replaces any persisted record wholesale.
func WithForceOverwrite(force bool) Option {
	return func(r *Reconciler) error {
		r.force = force
		return nil
	}
}

// Reconcile runs one reconciliation for the mission identified by key.
// Failures are reported through the Result, never panicked or logged away.
func (r *Reconciler) Reconcile(ctx context.Context, key string) *Result {
	log := logging.FromContext(ctx)
	res := &Result{Key: key, Forced: r.force}

	// A primary-source miss is fatal for this mission.
	raw, ok := r.primary.Find(key)
	if !ok {
		res.Err = errors.NewReconcileError(key, "lookup", errors.NewNotFoundError("mission", key))
		return res
	}

	// Build the working record from empty.
	working := &missions.Mission{}
	if err := r.primary.Enrich(working, raw); err != nil {
		res.Err = errors.NewReconcileError(key, "enrich", err)
		return res
	}

	// Secondary sources: look up by the first spacecraft's identity key,
	// falling back to the mission key. A miss skips the source.
	for _, src := range r.secondaries {
		raw, ok := r.findSecondary(src, working, key)
		if !ok {
			res.Skipped = append(res.Skipped, src.ID())
			log.Debug().Str("mission", key).Str("source", src.ID().String()).Msg("no match in secondary source, skipping enrichment")
			continue
		}
		if err := src.Enrich(working, raw); err != nil {
			res.Err = errors.NewReconcileError(key, "enrich", err)
			return res
		}
	}

	final := working
	if r.force {
		log.Debug().Str("mission", key).Msg("force overwrite, ignoring any persisted record")
	} else {
		existing, err := r.store.Load(key)
		switch {
		case err == nil:
			final = r.merge(existing, working)
		case errors.IsNotFound(err):
			res.Created = true
		default:
			// A load failure must not be treated as "no existing record":
			// doing so would drop curated fill-only data on save.
			res.Err = errors.NewReconcileError(key, "load", err)
			return res
		}
	}

	if err := final.Validate(); err != nil {
		res.Err = errors.NewReconcileError(key, "validate", err)
		return res
	}

	if err := r.store.Save(final); err != nil {
		res.Err = errors.NewReconcileError(key, "save", err)
		return res
	}

	res.Mission = final
	res.Path = r.store.Path(final.CanonicalShortName)

	log.Info().
		Str("mission", key).
		Str("path", res.Path).
		Bool("created", res.Created).
		Int("spacecraft", len(final.Spacecraft)).
		Msg("mission reconciled")

	return res
}

// findSecondary performs the two-step secondary lookup.
func (r *Reconciler) findSecondary(src sources.Source, working *missions.Mission, key string) (sources.Record, bool) {
	if id := derivedIdentity(working); id != "" {
		if raw, ok := src.Find(id); ok {
			return raw, true
		}
	}
	return src.Find(key)
}

// derivedIdentity returns the first spacecraft's identity key, if any.
func derivedIdentity(m *missions.Mission) string {
	if len(m.Spacecraft) == 0 {
		return ""
	}
	return m.Spacecraft[0].COSPARID
}

// merge folds the working record into the persisted one. The ownership
// policy is applied once per source in fixed priority order, and the
// spacecraft list is handled by the identity matcher rather than the
// generic field loop.
func (r *Reconciler) merge(existing, working *missions.Mission) *missions.Mission {
	merged := r.policy.Apply(existing, working, r.primary.ID())
	for _, src := range r.secondaries {
		merged = r.policy.Apply(merged, working, src.ID())
	}
	merged.Spacecraft = MatchSpacecraft(existing.Spacecraft, working.Spacecraft)
	return merged
}

// ReconcileAll reconciles a batch of missions. Each mission is independent
// and writes a distinct record file, so runs proceed in parallel up to
// parallelism (unlimited when <= 0). The returned results are in key order;
// per-mission failures are recorded, never propagated as a batch abort.
func (r *Reconciler) ReconcileAll(ctx context.Context, keys []string, parallelism int) Results {
	results := make(Results, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, key := range keys {
		g.Go(func() error {
			results[i] = r.Reconcile(logging.WithMission(gctx, key), key)
			return nil
		})
	}

	_ = g.Wait()
	return results
}
