package build

import (
	"context"
	"sync"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

// Executes jobs through a fixed number of parallel workers.
//
// The worker count is the concurrency bound for the whole run; it does not
// change while the pool is draining. Completion order across jobs is
// unconstrained, but collected results preserve submission order.
type pool struct {
	workers int
	runner  *runner
}

// A job queued for execution, tagged with its submission position.
type task struct {
	index int
	job   matrix.Job
}

// The result of a task, tagged with its submission position.
type outcome struct {
	index  int
	result Result
}

func newPool(workers int, r *runner) *pool {
	return &pool{workers: workers, runner: r}
}

// Runs all jobs and returns their results in submission order.
func (p *pool) run(ctx context.Context, jobs []matrix.Job) []Result {
	tasks := make(chan task)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.worker(ctx, id, tasks, outcomes)
		}(i)
	}

	go func() {
		for i, job := range jobs {
			tasks <- task{index: i, job: job}
		}
		close(tasks)
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	results := make([]Result, len(jobs))
	for out := range outcomes {
		results[out.index] = out.result
	}

	return results
}

// Consumes tasks until the queue closes, one job at a time.
func (p *pool) worker(ctx context.Context, id int, tasks <-chan task, outcomes chan<- outcome) {
	for t := range tasks {
		p.runner.log.Debug("worker picked up job", "worker", id, "job", t.job.Name)
		outcomes <- outcome{index: t.index, result: p.runner.run(ctx, t.job)}
	}
}
