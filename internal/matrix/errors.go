package matrix

import "errors"

var (
	ErrConfigMissing   = errors.New("CI configuration not found")
	ErrConfigMalformed = errors.New("CI configuration malformed")
)
