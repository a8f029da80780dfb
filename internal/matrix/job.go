package matrix

import "github.com/loopbio/conda-smithy/internal/paths"

// A single KEY=VALUE environment override.
type EnvVar struct {
	Key   string
	Value string
}

// Describes one linux build job of the local matrix.
//
// A Job is fully resolved at extraction time; mutating the configuration
// files afterwards does not affect jobs already collected.
type Job struct {
	RecipeRoot       string   // Feedstock being built.
	Name             string   // Job name as declared in the CI configuration.
	Env              []EnvVar // Environment overrides, in declaration order.
	DockerExecutable string   // Container runtime binary.
	DockerImage      string   // Image the build runs in.
}

// Path to the build script this job invokes.
func (j Job) Script() string {
	return paths.Script(j.RecipeRoot)
}
