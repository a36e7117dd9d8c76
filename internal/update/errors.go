package update

import "errors"

var (
	// ErrNoUpdateAvailable is returned when the current version is already up to date.
	ErrNoUpdateAvailable = errors.New("update: no update available")

	// ErrDevBuild is returned when checking updates from a dev build.
	ErrDevBuild = errors.New("update: dev build")
)
