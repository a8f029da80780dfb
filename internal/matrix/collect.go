package matrix

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/loopbio/conda-smithy/internal/paths"
)

// Defaults applied when the feedstock settings carry no docker overrides.
const (
	DefaultExecutable = "docker"
	DefaultImage      = "condaforge/linux-anvil"
)

// Collects the ordered list of linux build jobs of a feedstock.
//
// The rendered CircleCI configuration is required; its absence means there
// is nothing to build and is reported as [ErrConfigMissing]. All jobs of
// one collection share the docker executable and image resolved from the
// feedstock settings.
func Collect(recipeRoot string) ([]Job, error) {
	executable, image, err := dockerInfo(recipeRoot)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(recipeRoot, paths.CircleCIConfig))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMissing, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigMalformed, err)
	}

	jobsNode := mappingValue(documentRoot(&doc), "jobs")
	if jobsNode == nil || jobsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: no jobs mapping", ErrConfigMalformed)
	}

	jobs := make([]Job, 0, len(jobsNode.Content)/2)
	for i := 0; i+1 < len(jobsNode.Content); i += 2 {
		name := jobsNode.Content[i].Value

		env, err := environment(jobsNode.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: job %s: %v", ErrConfigMalformed, name, err)
		}

		jobs = append(jobs, Job{
			RecipeRoot:       recipeRoot,
			Name:             name,
			Env:              env,
			DockerExecutable: executable,
			DockerImage:      image,
		})
	}

	return jobs, nil
}

// Flattens a job's environment into ordered key/value pairs.
//
// The configuration declares the environment as a sequence of single-entry
// mappings; entries are flattened in declaration order. A job without an
// environment yields nil.
func environment(job *yaml.Node) ([]EnvVar, error) {
	envNode := mappingValue(job, "environment")
	if envNode == nil {
		return nil, nil
	}
	if envNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("environment is not a sequence")
	}

	var env []EnvVar
	for _, entry := range envNode.Content {
		if entry.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("environment entry is not a mapping")
		}
		for i := 0; i+1 < len(entry.Content); i += 2 {
			env = append(env, EnvVar{
				Key:   entry.Content[i].Value,
				Value: entry.Content[i+1].Value,
			})
		}
	}

	return env, nil
}

// Returns the value node for a key of a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Unwraps the document node of a parsed YAML file.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0]
	}
	return doc
}
