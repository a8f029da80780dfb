package build

import (
	"context"
	"log/slog"
	"os"

	"github.com/loopbio/conda-smithy/internal/command"
)

// Outcome of the best-effort rerender step.
type rerenderStatus int

const (
	rerenderOK rerenderStatus = iota
	rerenderToolMissing
	rerenderFailed
)

// Binary invoked to re-render the feedstock's CI templates.
const rerenderTool = "conda-smithy"

// Re-renders the feedstock's CI templates before building.
//
// Best effort: a missing conda-smithy binary and a failing rerender are
// both reported as warnings, never as fatal errors. The two outcomes stay
// distinguishable in the returned status.
func rerender(ctx context.Context, inv Invoker, log *slog.Logger, recipeRoot string) rerenderStatus {
	res, err := inv.Invoke(ctx, command.Invocation{
		Path:   rerenderTool,
		Args:   []string{"rerender", "--feedstock_directory", recipeRoot},
		Stdout: os.Stderr,
		Stderr: os.Stderr,
	})

	switch {
	case command.IsNotFound(err):
		log.Warn("could not rerender the feedstock, is conda-smithy available?")
		return rerenderToolMissing
	case err != nil:
		log.Warn("rerender could not be started", "error", err)
		return rerenderFailed
	case res.ExitCode != 0:
		log.Warn("rerender failed", "exit_code", res.ExitCode)
		return rerenderFailed
	}

	return rerenderOK
}
