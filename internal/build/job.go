package build

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/loopbio/conda-smithy/internal/command"
	"github.com/loopbio/conda-smithy/internal/matrix"
	"github.com/loopbio/conda-smithy/internal/paths"
)

// Executes single build jobs against the feedstock's build script.
type runner struct {
	inv     Invoker      // Reaches the external build script.
	baseEnv []string     // Immutable base environment shared by all jobs.
	output  io.Writer    // Sink for the per-job status line.
	log     *slog.Logger // Run-scoped logger.
}

// Executes one job to completion.
//
// A failing build is a normal outcome carried in the result. Only a failure
// to prepare the log sink is fatal to the job itself, yielding a result
// with no log file. Every call emits exactly one "JOB <name> OK|FAIL" line.
func (r *runner) run(ctx context.Context, job matrix.Job) Result {
	res, err := r.execute(ctx, job)
	if err != nil {
		r.log.Error("job could not be executed", "job", job.Name, "error", err)
		res = Result{Job: job, ExitCode: launchFailure}
	}

	status := "OK"
	if !res.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(r.output, "JOB %s %s\n", job.Name, status)

	return res
}

// Runs the build script of one job, capturing its combined output.
//
// A script that cannot be launched (missing, not executable) fails this
// job, not the run: the result carries the launch-failure exit code.
func (r *runner) execute(ctx context.Context, job matrix.Job) (Result, error) {
	logsDir, err := paths.EnsureWritableDir(paths.BuildLogs(job.RecipeRoot))
	if err != nil {
		return Result{}, err
	}

	logFile := filepath.Join(logsDir, job.Name+"."+timestamp(time.Now()))
	sink, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, paths.DefaultFileMode)
	if err != nil {
		return Result{}, err
	}
	defer sink.Close()

	res, err := r.inv.Invoke(ctx, command.Invocation{
		Path:   job.Script(),
		Env:    overlayEnv(r.baseEnv, job.Env),
		Stdout: sink,
		Stderr: sink,
	})
	if err != nil {
		r.log.Warn("build script could not be launched", "job", job.Name, "error", err)
		return Result{Job: job, ExitCode: launchFailure, LogFile: logFile}, nil
	}

	return Result{Job: job, ExitCode: res.ExitCode, LogFile: logFile}, nil
}

// Overlays job environment overrides onto a base environment.
//
// The base is never mutated. Later entries win on key collision, both
// against the base and among the overrides themselves.
func overlayEnv(base []string, overrides []matrix.EnvVar) []string {
	merged := make(map[string]string, len(base)+len(overrides))
	order := make([]string, 0, len(base)+len(overrides))

	add := func(k, v string) {
		if _, seen := merged[k]; !seen {
			order = append(order, k)
		}
		merged[k] = v
	}

	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			add(k, v)
		}
	}
	for _, v := range overrides {
		add(v.Key, v.Value)
	}

	env := make([]string, 0, len(order))
	for _, k := range order {
		env = append(env, k+"="+merged[k])
	}
	return env
}

// Formats a timestamp for log file names.
//
// Microsecond precision distinguishes repeated runs of the same job name;
// colons, spaces, and dots are avoided to keep the name filesystem safe.
func timestamp(t time.Time) string {
	return strings.ReplaceAll(t.Format("2006-01-02_15-04-05.000000"), ".", "-")
}
