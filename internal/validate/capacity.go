package validate

import (
	"fmt"
	"sort"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/normalize"
)

// CapacityErrors runs the three feasibility checks over workers and
// tasks: per-worker overload, per-phase demand saturation, and per-skill
// concurrency. All three are necessary-condition bounds: they prove a
// configuration impossible without attempting an actual assignment,
// so a clean result does not prove feasibility.
//
// Cells that failed to normalize are treated as empty sets here; the
// schema pass has already reported them.
func CapacityErrors(snap domain.Snapshot) []domain.ValidationError {
	var errs []domain.ValidationError
	errs = append(errs, overloadErrors(snap)...)
	errs = append(errs, saturationErrors(snap)...)
	errs = append(errs, concurrencyErrors(snap)...)
	return errs
}

// overloadErrors flags workers that declare more per-phase load than
// they have phases to spend it in.
func overloadErrors(snap domain.Snapshot) []domain.ValidationError {
	var errs []domain.ValidationError
	for i, w := range snap.Workers {
		slots, err := normalize.PhaseSet(w.AvailableSlots)
		if err != nil {
			continue
		}
		if len(slots) < w.MaxLoadPerPhase {
			errs = append(errs, capacityErr(domain.DatasetWorkers,
				domain.RowRef{Index: i, Key: w.WorkerID},
				fmt.Sprintf("worker is overloaded: %d available slots < MaxLoadPerPhase %d",
					len(slots), w.MaxLoadPerPhase)))
		}
	}
	return errs
}

// saturationErrors compares, for every phase any task prefers, the
// aggregate duration demanded against the aggregate worker capacity in
// that phase. This bound ignores assignment: if it trips, no assignment
// restricted to preferred phases can satisfy the phase.
func saturationErrors(snap domain.Snapshot) []domain.ValidationError {
	capacity := make(map[int]int)
	for _, w := range snap.Workers {
		slots, err := normalize.PhaseSet(w.AvailableSlots)
		if err != nil {
			continue
		}
		for _, p := range slots {
			capacity[p] += w.MaxLoadPerPhase
		}
	}

	demand := make(map[int]int)
	for _, t := range snap.Tasks {
		phases, err := normalize.PhaseSet(t.PreferredPhases)
		if err != nil {
			continue
		}
		for _, p := range phases {
			demand[p] += t.Duration
		}
	}

	phases := make([]int, 0, len(demand))
	for p := range demand {
		phases = append(phases, p)
	}
	sort.Ints(phases)

	var errs []domain.ValidationError
	for _, p := range phases {
		if demand[p] > capacity[p] {
			errs = append(errs, capacityErr(domain.DatasetTasks, domain.DatasetRef,
				fmt.Sprintf("phase %d is saturated: demand %d exceeds capacity %d",
					p, demand[p], capacity[p])))
		}
	}
	return errs
}

// concurrencyErrors flags tasks whose MaxConcurrent exceeds the number
// of distinct workers holding any required skill. Workers shared across
// tasks are not accounted for; this only detects definite shortfalls.
func concurrencyErrors(snap domain.Snapshot) []domain.ValidationError {
	workersBySkill := make(map[string]int)
	for _, w := range snap.Workers {
		// Skills is a set: a worker counts once per skill no matter
		// how often the cell repeats the token.
		for _, skill := range normalize.SplitSet(w.Skills) {
			workersBySkill[skill]++
		}
	}

	var errs []domain.ValidationError
	for i, t := range snap.Tasks {
		if t.MaxConcurrent < 1 {
			continue
		}
		row := domain.RowRef{Index: i, Key: t.TaskID}
		for _, skill := range normalize.SplitList(t.RequiredSkills) {
			if n := workersBySkill[skill]; n < t.MaxConcurrent {
				errs = append(errs, capacityErr(domain.DatasetTasks, row,
					fmt.Sprintf("MaxConcurrent %d exceeds the %d workers skilled in %q",
						t.MaxConcurrent, n, skill)))
			}
		}
	}
	return errs
}

func capacityErr(kind domain.DatasetKind, row domain.RowRef, msg string) domain.ValidationError {
	return domain.ValidationError{
		Dataset:  kind,
		Row:      row,
		Category: domain.CategoryCapacity,
		Message:  msg,
	}
}
