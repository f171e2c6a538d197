package reconcile

import (
	"fmt"

	"github.com/planetary-society/missions/pkg/missions"
	"github.com/planetary-society/missions/pkg/sources"
)

// Result reports the outcome of reconciling one mission. A batch run
// collects one Result per mission; a single mission's failure never aborts
// the rest of the batch.
type Result struct {
	// Key is the mission short name the run was invoked with.
	Key string

	// Mission is the final persisted record, nil when the run failed.
	Mission *missions.Mission

	// Path is the record file the mission was written to.
	Path string

	// Created is true when no persisted record existed before this run.
	Created bool

	// Forced is true when the run bypassed the merge-with-existing step.
	Forced bool

	// Skipped lists secondary sources that yielded no match; their
	// enrichment steps were not run.
	Skipped []sources.ID

	// Err is the failure reason, nil on success.
	Err error
}

// Failed reports whether the run failed.
func (r *Result) Failed() bool {
	return r.Err != nil
}

// Results is the outcome of a batch run, in input key order.
type Results []*Result

// Failed returns the number of failed missions.
func (rs Results) Failed() int {
	n := 0
	for _, r := range rs {
		if r.Failed() {
			n++
		}
	}
	return n
}

// Err returns a summary error when any mission in the batch failed, nil
// otherwise.
func (rs Results) Err() error {
	if n := rs.Failed(); n > 0 {
		return fmt.Errorf("%d of %d missions failed", n, len(rs))
	}
	return nil
}
