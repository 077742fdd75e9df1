package validate

import (
	"testing"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityErrors_WorkerOverload(t *testing.T) {
	// Two slots, declared load of three per phase.
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1",
			testutil.WithSlots("1,2"), testutil.WithMaxLoad(3))},
		nil)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.DatasetWorkers, errs[0].Dataset)
	assert.Equal(t, domain.CategoryCapacity, errs[0].Category)
	assert.Contains(t, errs[0].Message, "overloaded")

	snap.Workers[0].MaxLoadPerPhase = 2
	assert.Empty(t, CapacityErrors(snap))
}

func TestCapacityErrors_PhaseSaturation(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1",
			testutil.WithSlots("1,2"), testutil.WithMaxLoad(2))},
		[]domain.TaskRecord{testutil.NewTestTask("T1",
			testutil.WithPreferredPhases("1"), testutil.WithDuration(5))},
	)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CategoryCapacity, errs[0].Category)
	assert.Contains(t, errs[0].Message, "phase 1")
	assert.Contains(t, errs[0].Message, "demand 5")
	assert.Contains(t, errs[0].Message, "capacity 2")

	// Shrinking the task inside capacity clears the finding.
	snap.Tasks[0].Duration = 2
	assert.Empty(t, CapacityErrors(snap))
}

func TestCapacityErrors_SaturationAggregatesAcrossRows(t *testing.T) {
	// Two workers cover phase 2 with 2 load each; three tasks of
	// duration 2 preferring phase 2 demand 6 > 4.
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{
			testutil.NewTestWorker("W1", testutil.WithSlots("1,2"), testutil.WithMaxLoad(2)),
			testutil.NewTestWorker("W2", testutil.WithSlots("2,3"), testutil.WithMaxLoad(2)),
		},
		[]domain.TaskRecord{
			testutil.NewTestTask("T1", testutil.WithPreferredPhases("2"), testutil.WithDuration(2)),
			testutil.NewTestTask("T2", testutil.WithPreferredPhases("2"), testutil.WithDuration(2)),
			testutil.NewTestTask("T3", testutil.WithPreferredPhases("2"), testutil.WithDuration(2)),
		},
	)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "phase 2")
	assert.Contains(t, errs[0].Message, "demand 6")
	assert.Contains(t, errs[0].Message, "capacity 4")
}

func TestCapacityErrors_SaturatedPhasesReportedInOrder(t *testing.T) {
	// The worker covers the skill but contributes no capacity to the
	// phases the tasks prefer.
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1",
			testutil.WithSlots("9"), testutil.WithMaxLoad(0))},
		[]domain.TaskRecord{
			testutil.NewTestTask("T1", testutil.WithPreferredPhases("7"), testutil.WithDuration(1)),
			testutil.NewTestTask("T2", testutil.WithPreferredPhases("3"), testutil.WithDuration(1)),
		},
	)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, "phase 3")
	assert.Contains(t, errs[1].Message, "phase 7")
}

func TestCapacityErrors_SkillConcurrency(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1", testutil.WithSkills("python"))},
		[]domain.TaskRecord{testutil.NewTestTask("T1",
			testutil.WithRequiredSkills("python"),
			testutil.WithMaxConcurrent(2),
			testutil.WithDuration(1),
			testutil.WithPreferredPhases("1"))},
	)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.DatasetTasks, errs[0].Dataset)
	assert.Contains(t, errs[0].Message, `"python"`)

	// A second qualified worker satisfies the concurrency bound.
	snap.Workers = append(snap.Workers, testutil.NewTestWorker("W2", testutil.WithSkills("python")))
	assert.Empty(t, CapacityErrors(snap))
}

func TestCapacityErrors_ConcurrencyCheckedPerSkill(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{
			testutil.NewTestWorker("W1", testutil.WithSkills("python,go"), testutil.WithSlots("1-4"), testutil.WithMaxLoad(4)),
			testutil.NewTestWorker("W2", testutil.WithSkills("python"), testutil.WithSlots("1-4"), testutil.WithMaxLoad(4)),
		},
		[]domain.TaskRecord{testutil.NewTestTask("T1",
			testutil.WithRequiredSkills("python,go"),
			testutil.WithMaxConcurrent(2),
			testutil.WithPreferredPhases("1"))},
	)

	// python has two workers, go only one: exactly one finding, for go.
	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, `"go"`)
}

func TestCapacityErrors_RepeatedSkillTokenCountsOneWorker(t *testing.T) {
	// A Skills cell that repeats a token still describes one worker;
	// MaxConcurrent 2 with a single qualified worker must be flagged.
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1", testutil.WithSkills("python, python"))},
		[]domain.TaskRecord{testutil.NewTestTask("T1",
			testutil.WithRequiredSkills("python"),
			testutil.WithMaxConcurrent(2),
			testutil.WithDuration(1),
			testutil.WithPreferredPhases("1"))},
	)

	errs := CapacityErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CategoryCapacity, errs[0].Category)
	assert.Contains(t, errs[0].Message, `the 1 workers skilled in "python"`)
}

func TestCapacityErrors_MalformedCellsAlreadyReportedAreSkipped(t *testing.T) {
	// An unparseable phase cell is a schema finding; the capacity pass
	// treats it as empty rather than double-reporting.
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1", testutil.WithSlots("x-y"), testutil.WithMaxLoad(0))},
		[]domain.TaskRecord{testutil.NewTestTask("T1", testutil.WithPreferredPhases("bad"), testutil.WithDuration(9))},
	)
	assert.Empty(t, CapacityErrors(snap))
}
