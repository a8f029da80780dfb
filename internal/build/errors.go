package build

import "errors"

var (
	ErrPull        = errors.New("image pull failed")
	ErrArtefactDir = errors.New("artefact directory unusable")
)

// Exit code reported when a build script could not be launched.
const launchFailure = -1
