package build

import (
	"testing"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

func namedJobs(names ...string) []matrix.Job {
	jobs := make([]matrix.Job, len(names))
	for i, name := range names {
		jobs[i] = matrix.Job{Name: name}
	}
	return jobs
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name string
		jobs []string
		only []string
		want []string
	}{
		{
			name: "empty filter retains all",
			jobs: []string{"a", "b", "c"},
			only: nil,
			want: []string{"a", "b", "c"},
		},
		{
			name: "by name",
			jobs: []string{"a", "b", "c"},
			only: []string{"b"},
			want: []string{"b"},
		},
		{
			name: "by index",
			jobs: []string{"a", "b", "c"},
			only: []string{"2"},
			want: []string{"c"},
		},
		{
			name: "mixed name and index",
			jobs: []string{"a", "b", "c"},
			only: []string{"a", "2"},
			want: []string{"a", "c"},
		},
		{
			name: "unknown selector",
			jobs: []string{"a", "b"},
			only: []string{"z", "9"},
			want: []string{},
		},
		{
			name: "extraction order preserved",
			jobs: []string{"a", "b", "c"},
			only: []string{"c", "a"},
			want: []string{"a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterJobs(namedJobs(tt.jobs...), tt.only)
			if len(got) != len(tt.want) {
				t.Fatalf("filtered %d jobs, want %d", len(got), len(tt.want))
			}
			for i, job := range got {
				if job.Name != tt.want[i] {
					t.Fatalf("filtered[%d] = %q, want %q", i, job.Name, tt.want[i])
				}
			}
		})
	}
}

func TestFilterIndexNameEquivalence(t *testing.T) {
	jobs := namedJobs("linux_64")

	byIndex := filterJobs(jobs, []string{"0"})
	byName := filterJobs(jobs, []string{"linux_64"})

	if len(byIndex) != 1 || len(byName) != 1 {
		t.Fatalf("byIndex = %d jobs, byName = %d jobs, want 1 each", len(byIndex), len(byName))
	}
	if byIndex[0].Name != byName[0].Name {
		t.Fatalf("index and name filters selected different jobs: %q vs %q", byIndex[0].Name, byName[0].Name)
	}
}

func TestFilterIsSubset(t *testing.T) {
	jobs := namedJobs("a", "b", "c")
	filtered := filterJobs(jobs, []string{"b", "0", "nope"})

	extracted := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		extracted[job.Name] = struct{}{}
	}
	for _, job := range filtered {
		if _, ok := extracted[job.Name]; !ok {
			t.Fatalf("filtered job %q not in extracted set", job.Name)
		}
	}
}
