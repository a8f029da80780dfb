package build

import (
	"strconv"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

// Retains jobs selected by name or positional index.
//
// An empty filter retains everything. Indices refer to the extracted job
// order and are matched by their decimal string form, so on a single-job
// matrix "0" and the job's name select the same job.
func filterJobs(jobs []matrix.Job, only []string) []matrix.Job {
	if len(only) == 0 {
		return jobs
	}

	selected := make(map[string]struct{}, len(only))
	for _, s := range only {
		selected[s] = struct{}{}
	}

	filtered := make([]matrix.Job, 0, len(jobs))
	for i, job := range jobs {
		if _, ok := selected[job.Name]; ok {
			filtered = append(filtered, job)
			continue
		}
		if _, ok := selected[strconv.Itoa(i)]; ok {
			filtered = append(filtered, job)
		}
	}

	return filtered
}
