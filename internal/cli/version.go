package cli

import (
	"context"
	"fmt"

	"github.com/loopbio/conda-smithy/internal"
)

// Represents the 'smithy-local version' command.
type VersionCmd struct{}

// Executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	fmt.Println(internal.VersionString())
	return nil
}
