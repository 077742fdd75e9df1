package validate

import (
	"fmt"
	"strings"

	"github.com/asapSAGNIK/Data-Alchemist/internal/domain"
	"github.com/asapSAGNIK/Data-Alchemist/internal/normalize"
)

// ReferenceErrors checks referential integrity across datasets: client
// RequestedTaskIDs against task TaskIDs, and task RequiredSkills against
// the union of worker skills. Each direction is evaluated only when both
// datasets involved are non-empty, so a half-loaded workspace does not
// drown in dangling-reference noise.
func ReferenceErrors(snap domain.Snapshot) []domain.ValidationError {
	var errs []domain.ValidationError

	if len(snap.Clients) > 0 && len(snap.Tasks) > 0 {
		errs = append(errs, requestedTaskErrors(snap)...)
	}
	if len(snap.Tasks) > 0 && len(snap.Workers) > 0 {
		errs = append(errs, requiredSkillErrors(snap)...)
	}
	return errs
}

func requestedTaskErrors(snap domain.Snapshot) []domain.ValidationError {
	known := make(map[string]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		known[strings.TrimSpace(t.TaskID)] = true
	}

	var errs []domain.ValidationError
	for i, c := range snap.Clients {
		row := domain.RowRef{Index: i, Key: c.ClientID}
		for _, taskID := range normalize.SplitList(c.RequestedTaskIDs) {
			if !known[taskID] {
				errs = append(errs, domain.ValidationError{
					Dataset:  domain.DatasetClients,
					Row:      row,
					Category: domain.CategoryReference,
					Message:  fmt.Sprintf("RequestedTaskIDs references unknown task %q", taskID),
				})
			}
		}
	}
	return errs
}

func requiredSkillErrors(snap domain.Snapshot) []domain.ValidationError {
	available := make(map[string]bool)
	for _, w := range snap.Workers {
		for _, skill := range normalize.SplitSet(w.Skills) {
			available[skill] = true
		}
	}

	var errs []domain.ValidationError
	for i, t := range snap.Tasks {
		row := domain.RowRef{Index: i, Key: t.TaskID}
		for _, skill := range normalize.SplitList(t.RequiredSkills) {
			if !available[skill] {
				errs = append(errs, domain.ValidationError{
					Dataset:  domain.DatasetTasks,
					Row:      row,
					Category: domain.CategoryReference,
					Message:  fmt.Sprintf("RequiredSkills references skill %q no worker provides", skill),
				})
			}
		}
	}
	return errs
}
