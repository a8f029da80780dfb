package cli

import (
	"context"
	"fmt"

	"github.com/loopbio/conda-smithy/internal/build"
	"github.com/loopbio/conda-smithy/internal/command"
)

// Represents the 'smithy-local run' command.
type RunCmd struct {
	FeedstockDirectory string   `short:"f" default:"." type:"path" help:"Feedstock to build."`
	NoRerender         bool     `help:"Do not rerender the feedstock before building."`
	NoPull             bool     `help:"Do not pull docker images before building."`
	Threads            int      `short:"j" default:"1" help:"Number of jobs to build in parallel."`
	UnsafeFirstJob     bool     `help:"Do not run the first job alone before the parallel pass."`
	WarmupOnce         bool     `help:"Do not repeat the warm-up job in the parallel pass."`
	Jobs               []string `arg:"" optional:"" help:"Job names or indices to build; all when omitted."`
}

// Executes the run command.
//
// Builds the selected jobs and returns an error when any of them failed,
// so the process exits non-zero on a broken matrix.
func (c *RunCmd) Run(ctx context.Context) error {
	results, err := build.Run(ctx, command.Local{}, build.Options{
		RecipeRoot:   c.FeedstockDirectory,
		SkipRerender: c.NoRerender,
		SkipPull:     c.NoPull,
		Concurrency:  c.Threads,
		SafeFirstJob: !c.UnsafeFirstJob,
		WarmupOnce:   c.WarmupOnce,
		Only:         c.Jobs,
	})
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if !res.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(results))
	}

	return nil
}
