// Package build orchestrates local execution of a feedstock's CI build
// matrix.
//
// A run re-renders the feedstock (best effort), collects the job matrix
// from the rendered CircleCI configuration, pulls each distinct docker
// image once, then executes the jobs' build scripts through a fixed-size
// worker pool, capturing each job's combined output in a timestamped log
// file. The first job can run alone before the pool starts so that the
// shared source cache is populated before concurrent jobs can race on
// partially downloaded assets.
//
// External processes (rerender, image pulls, build scripts) are reached
// through the [Invoker] interface; the command package provides the
// host-local implementation. Jobs are never cancelled or timed out: a hung
// build script occupies its worker slot for the rest of the run.
//
// Example usage:
//
//	results, err := build.Run(ctx, command.Local{}, build.Options{
//	    RecipeRoot:   "~/ffmpeg-feedstock",
//	    Concurrency:  3,
//	    SafeFirstJob: true,
//	})
//	if err != nil {
//	    return err
//	}
package build
