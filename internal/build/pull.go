package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/loopbio/conda-smithy/internal/command"
	"github.com/loopbio/conda-smithy/internal/matrix"
)

// A distinct (executable, image) pair requiring a pull.
type pullTarget struct {
	executable string
	image      string
}

// Deduplicated pull targets across the given jobs, sorted for a
// deterministic pull order.
func pullTargets(jobs []matrix.Job) []pullTarget {
	seen := make(map[pullTarget]struct{}, len(jobs))
	targets := make([]pullTarget, 0, 1)

	for _, job := range jobs {
		t := pullTarget{executable: job.DockerExecutable, image: job.DockerImage}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		targets = append(targets, t)
	}

	sort.Slice(targets, func(i, j int) bool {
		if targets[i].executable != targets[j].executable {
			return targets[i].executable < targets[j].executable
		}
		return targets[i].image < targets[j].image
	})

	return targets
}

// Pulls every distinct image used by the jobs.
//
// Pulls run sequentially regardless of build concurrency; registries
// serialize pulls of the same layers anyway. Any failed pull aborts the
// run before a job executes, since jobs using the image would be
// unbuildable.
func pullImages(ctx context.Context, inv Invoker, log *slog.Logger, jobs []matrix.Job) error {
	for _, t := range pullTargets(jobs) {
		log.Info("pulling image", "executable", t.executable, "image", t.image)

		res, err := inv.Invoke(ctx, command.Invocation{
			Path:   t.executable,
			Args:   []string{"pull", t.image},
			Stdout: os.Stderr,
			Stderr: os.Stderr,
		})
		if err != nil {
			return fmt.Errorf("%w: %s pull %s: %v", ErrPull, t.executable, t.image, err)
		}
		if res.ExitCode != 0 {
			return fmt.Errorf("%w: %s pull %s: exit code %d", ErrPull, t.executable, t.image, res.ExitCode)
		}
	}

	return nil
}
