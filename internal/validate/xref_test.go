package validate

import (
	"testing"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceErrors_UnknownRequestedTask(t *testing.T) {
	snap := testutil.NewTestSnapshot(
		[]domain.ClientRecord{testutil.NewTestClient("C1", testutil.WithRequestedTasks("T1,T9"))},
		nil,
		[]domain.TaskRecord{testutil.NewTestTask("T1")},
	)

	errs := ReferenceErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.DatasetClients, errs[0].Dataset)
	assert.Equal(t, domain.CategoryReference, errs[0].Category)
	assert.Contains(t, errs[0].Message, `"T9"`)
}

func TestReferenceErrors_OneErrorPerDanglingToken(t *testing.T) {
	snap := testutil.NewTestSnapshot(
		[]domain.ClientRecord{testutil.NewTestClient("C1", testutil.WithRequestedTasks("T7, T8,T9"))},
		nil,
		[]domain.TaskRecord{testutil.NewTestTask("T1")},
	)
	assert.Len(t, ReferenceErrors(snap), 3)
}

func TestReferenceErrors_TokensTrimmedBeforeCompare(t *testing.T) {
	snap := testutil.NewTestSnapshot(
		[]domain.ClientRecord{testutil.NewTestClient("C1", testutil.WithRequestedTasks(" T1 , T2 "))},
		nil,
		[]domain.TaskRecord{testutil.NewTestTask("T1"), testutil.NewTestTask("T2")},
	)
	assert.Empty(t, ReferenceErrors(snap))
}

func TestReferenceErrors_UncoveredSkill(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{testutil.NewTestWorker("W1", testutil.WithSkills("python,go"))},
		[]domain.TaskRecord{testutil.NewTestTask("T1", testutil.WithRequiredSkills("go,rust"))},
	)

	errs := ReferenceErrors(snap)
	require.Len(t, errs, 1)
	assert.Equal(t, domain.DatasetTasks, errs[0].Dataset)
	assert.Contains(t, errs[0].Message, `"rust"`)
}

func TestReferenceErrors_SkillUnionAcrossWorkers(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil,
		[]domain.WorkerRecord{
			testutil.NewTestWorker("W1", testutil.WithSkills("python")),
			testutil.NewTestWorker("W2", testutil.WithSkills("go")),
		},
		[]domain.TaskRecord{testutil.NewTestTask("T1", testutil.WithRequiredSkills("python,go"))},
	)
	assert.Empty(t, ReferenceErrors(snap))
}

func TestReferenceErrors_SkippedWhenEitherSideEmpty(t *testing.T) {
	// A client requesting unknown tasks raises nothing while the tasks
	// dataset is still unloaded, and a task requiring unknown skills
	// raises nothing while workers are unloaded.
	clientsOnly := testutil.NewTestSnapshot(
		[]domain.ClientRecord{testutil.NewTestClient("C1", testutil.WithRequestedTasks("T9"))},
		nil, nil)
	assert.Empty(t, ReferenceErrors(clientsOnly))

	tasksOnly := testutil.NewTestSnapshot(nil, nil,
		[]domain.TaskRecord{testutil.NewTestTask("T1", testutil.WithRequiredSkills("rust"))})
	assert.Empty(t, ReferenceErrors(tasksOnly))
}
