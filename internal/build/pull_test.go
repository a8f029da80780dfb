package build

import (
	"testing"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

func TestPullTargets(t *testing.T) {
	jobs := []matrix.Job{
		{Name: "a", DockerExecutable: "docker", DockerImage: "condaforge/linux-anvil"},
		{Name: "b", DockerExecutable: "docker", DockerImage: "condaforge/linux-anvil"},
		{Name: "c", DockerExecutable: "podman", DockerImage: "condaforge/linux-anvil"},
		{Name: "d", DockerExecutable: "docker", DockerImage: "condaforge/linux-anvil-aarch64"},
	}

	targets := pullTargets(jobs)

	want := []pullTarget{
		{"docker", "condaforge/linux-anvil"},
		{"docker", "condaforge/linux-anvil-aarch64"},
		{"podman", "condaforge/linux-anvil"},
	}
	if len(targets) != len(want) {
		t.Fatalf("targets = %v, want %v", targets, want)
	}
	for i := range want {
		if targets[i] != want[i] {
			t.Fatalf("targets[%d] = %v, want %v", i, targets[i], want[i])
		}
	}
}

func TestPullTargetsDeterministic(t *testing.T) {
	forward := []matrix.Job{
		{DockerExecutable: "docker", DockerImage: "b"},
		{DockerExecutable: "docker", DockerImage: "a"},
	}
	reverse := []matrix.Job{
		{DockerExecutable: "docker", DockerImage: "a"},
		{DockerExecutable: "docker", DockerImage: "b"},
	}

	f := pullTargets(forward)
	r := pullTargets(reverse)

	if len(f) != len(r) {
		t.Fatalf("target counts differ: %d vs %d", len(f), len(r))
	}
	for i := range f {
		if f[i] != r[i] {
			t.Fatalf("order depends on job order: %v vs %v", f, r)
		}
	}
}
