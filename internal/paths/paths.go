package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"
)

const (

	// Directory under the feedstock root holding everything local builds
	// produce (logs, caches, packages).
	ArtefactDirName = "build_artifacts"

	// Subdirectory of the artefact root shared by all jobs as a source
	// download cache. Its existence marks the cache as populated.
	SrcCacheDirName = "src_cache"

	// Subdirectory of the artefact root holding per-job build logs.
	buildLogsDirName = "build_logs"

	// Platform segment under the log directory.
	linuxPlatform = "linux"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Locations consumed inside a feedstock, relative to its root.
const (

	// Rendered CircleCI configuration, the source of the job matrix.
	CircleCIConfig = ".circleci/config.yml"

	// Optional feedstock settings carrying docker overrides.
	SettingsFile = "conda-forge.yml"

	// Script invoked to run one docker build job.
	BuildScript = "ci_support/run_docker_build.sh"
)

var (
	ErrNotDirectory = errors.New("path exists but is not a directory")
	ErrNotWritable  = errors.New("directory is not writable")
)

// Path to the artefact root of a feedstock.
func ArtefactRoot(recipeRoot string) string {
	return filepath.Join(recipeRoot, ArtefactDirName)
}

// Path to the shared source cache of a feedstock.
func SrcCache(recipeRoot string) string {
	return filepath.Join(ArtefactRoot(recipeRoot), SrcCacheDirName)
}

// Path to the linux build-log directory of a feedstock.
func BuildLogs(recipeRoot string) string {
	return filepath.Join(ArtefactRoot(recipeRoot), buildLogsDirName, linuxPlatform)
}

// Path to the docker build script of a feedstock.
func Script(recipeRoot string) string {
	return filepath.Join(recipeRoot, BuildScript)
}

// Expands a leading "~" to the user's home directory.
func Expand(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~"+string(os.PathSeparator)) {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}

// Ensures that the joined path is a writable directory.
//
// The base path is user-expanded, joined with the given segments, and made
// absolute. On success the returned path exists, is a directory, and is
// writable by the current process.
//
// Safe to call concurrently for the same path: if creation fails because
// another caller created the directory first, the existing directory is
// re-validated instead of propagating the creation failure.
func EnsureWritableDir(base string, parts ...string) (string, error) {
	path, err := filepath.Abs(Expand(filepath.Join(append([]string{base}, parts...)...)))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", base, err)
	}

	if info, err := os.Stat(path); err == nil {
		return path, checkDir(path, info)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	if mkErr := os.MkdirAll(path, DefaultDirMode); mkErr != nil {
		// A concurrent caller may have won the creation race; re-check
		// before giving up.
		if info, err := os.Stat(path); err == nil {
			return path, checkDir(path, info)
		}
		return "", fmt.Errorf("create %s: %w", path, mkErr)
	}

	return path, nil
}

// Validates that an existing path is a writable directory.
func checkDir(path string, info os.FileInfo) error {
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	if err := unix.Access(path, unix.W_OK); err != nil {
		return fmt.Errorf("%w: %s", ErrNotWritable, path)
	}
	return nil
}
