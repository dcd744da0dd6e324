package script

import "errors"

var (
	// ErrScriptTimeout is returned when a script exceeds its time limit.
	ErrScriptTimeout = errors.New("script timed out")

	// ErrRunnerClosed is returned when running on a closed Runner.
	ErrRunnerClosed = errors.New("script runner is closed")
)
