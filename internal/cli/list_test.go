package cli

import (
	"testing"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

func TestDescribe(t *testing.T) {
	job := matrix.Job{
		RecipeRoot: "/work/fs",
		Name:       "linux_64",
		Env: []matrix.EnvVar{
			{Key: "PY", Value: "38"},
			{Key: "NPY", Value: "1.16"},
		},
	}

	got := describe(job)
	want := `linux_64: PY="38" NPY="1.16" /work/fs/ci_support/run_docker_build.sh`
	if got != want {
		t.Fatalf("describe = %q, want %q", got, want)
	}
}

func TestDescribeNoEnv(t *testing.T) {
	job := matrix.Job{RecipeRoot: "/work/fs", Name: "linux_64"}

	got := describe(job)
	want := "linux_64: /work/fs/ci_support/run_docker_build.sh"
	if got != want {
		t.Fatalf("describe = %q, want %q", got, want)
	}
}
