package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/loopbio/conda-smithy/internal/command"
	"github.com/loopbio/conda-smithy/internal/matrix"
	"github.com/loopbio/conda-smithy/internal/paths"
)

// Runs external processes (rerenders, image pulls, build scripts).
type Invoker interface {
	Invoke(ctx context.Context, inv command.Invocation) (command.Result, error)
}

// Controls a local build run.
type Options struct {
	RecipeRoot   string    // Feedstock to build.
	SkipRerender bool      // Skip the conda-smithy rerender step.
	SkipPull     bool      // Skip pulling docker images before building.
	Concurrency  int       // Number of parallel build workers, minimum 1.
	SafeFirstJob bool      // Run the first job alone before the pool starts.
	WarmupOnce   bool      // Exclude the warm-up job from the pool pass.
	Only         []string  // Job names or indices to build; empty builds all.
	BaseEnv      []string  // Base process environment; nil resolves os.Environ once at entry.
	Output       io.Writer // Sink for JOB lines and the summary; nil means os.Stdout.
}

// Outcome of one executed job.
type Result struct {
	Job      matrix.Job // The job that was executed.
	ExitCode int        // 0 on success; -1 when the script could not be launched.
	LogFile  string     // Combined stdout/stderr capture; empty when the log sink could not be prepared.
}

// Whether the job finished successfully.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// Executes the local build matrix of a feedstock.
//
// Jobs are collected from the rendered CI configuration, filtered by name
// or index, and executed through a worker pool of the configured size.
// Every distinct docker image is pulled once, sequentially, before any job
// starts; a failed pull aborts the run. A failing build script does not:
// it is reported as a failed [Result] and the run continues. The returned
// results are in execution-submission order, warm-up first.
func Run(ctx context.Context, inv Invoker, opts Options) ([]Result, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.BaseEnv == nil {
		opts.BaseEnv = os.Environ()
	}

	log := slog.With("run", uuid.NewString())

	if !opts.SkipRerender {
		rerender(ctx, inv, log, opts.RecipeRoot)
	}

	jobs, err := matrix.Collect(opts.RecipeRoot)
	if err != nil {
		return nil, err
	}

	jobs = filterJobs(jobs, opts.Only)
	if len(jobs) == 0 {
		fmt.Fprintln(opts.Output, "no jobs to build")
		return nil, nil
	}

	log.Info("collected jobs", "count", len(jobs), "concurrency", opts.Concurrency)

	if !opts.SkipPull {
		if err := pullImages(ctx, inv, log, jobs); err != nil {
			return nil, err
		}
	}

	if _, err := paths.EnsureWritableDir(paths.ArtefactRoot(opts.RecipeRoot)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtefactDir, err)
	}

	r := &runner{inv: inv, baseEnv: opts.BaseEnv, output: opts.Output, log: log}

	var results []Result

	pooled := jobs
	if warmupNeeded(opts) {
		log.Info("warming the source cache with a synchronous first job", "job", jobs[0].Name)
		results = append(results, r.run(ctx, jobs[0]))
		if opts.WarmupOnce {
			pooled = jobs[1:]
		}
	}

	results = append(results, newPool(opts.Concurrency, r).run(ctx, pooled)...)

	report(opts.Output, results)

	return results, nil
}

// Whether the first job must run alone before the pool starts.
//
// The warm-up is forced while the shared source cache does not exist yet:
// concurrent first-time population produces checksum failures against
// partially downloaded assets.
func warmupNeeded(opts Options) bool {
	if opts.SafeFirstJob {
		return true
	}
	info, err := os.Stat(paths.SrcCache(opts.RecipeRoot))
	return err != nil || !info.IsDir()
}
