// Provides feedstock-relative paths and writable-directory guarantees.
//
// All artefacts produced by local builds live under a single directory at
// the feedstock root. Log directories are created on demand through
// [EnsureWritableDir], which is safe to call from concurrent build jobs
// targeting the same path.
package paths
