package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/loopbio/conda-smithy/internal/matrix"
)

// Represents the 'smithy-local list' command.
type ListCmd struct {
	FeedstockDirectory string `short:"f" default:"." type:"path" help:"Feedstock to inspect."`
}

// Executes the list command.
//
// Prints one line per job: the name, its environment overrides, and the
// build script the job invokes.
func (c *ListCmd) Run(ctx context.Context) error {
	jobs, err := matrix.Collect(c.FeedstockDirectory)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		fmt.Println(describe(job))
	}

	return nil
}

// Formats one job as a single listing line.
func describe(job matrix.Job) string {
	var b strings.Builder
	b.WriteString(job.Name + ":")
	for _, v := range job.Env {
		fmt.Fprintf(&b, " %s=%q", v.Key, v.Value)
	}
	b.WriteString(" " + job.Script())
	return b.String()
}
