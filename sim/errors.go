package sim

import "errors"

// ErrBadWorkers indicates a negative Options.Workers value.
// Zero means "one worker per CPU"; use 1 for strictly sequential runs.
var ErrBadWorkers = errors.New("sim: Workers must be non-negative")
