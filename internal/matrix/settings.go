package matrix

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/loopbio/conda-smithy/internal/paths"
)

// Reads docker overrides from the optional feedstock settings.
//
// A missing or unreadable settings file is not an error; the conventional
// defaults apply. A settings file that is present but does not parse is a
// configuration problem and is reported.
func dockerInfo(recipeRoot string) (executable, image string, err error) {
	executable, image = DefaultExecutable, DefaultImage

	raw, readErr := os.ReadFile(filepath.Join(recipeRoot, paths.SettingsFile))
	if readErr != nil {
		return executable, image, nil
	}

	var settings struct {
		Docker struct {
			Executable string `yaml:"executable"`
			Image      string `yaml:"image"`
		} `yaml:"docker"`
	}
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrConfigMalformed, paths.SettingsFile, err)
	}

	if settings.Docker.Executable != "" {
		executable = settings.Docker.Executable
	}
	if settings.Docker.Image != "" {
		image = settings.Docker.Image
	}

	return executable, image, nil
}
