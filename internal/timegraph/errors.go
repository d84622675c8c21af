package timegraph

import "errors"

// ErrNilMap indicates a nil *simmap.Map was passed to Build.
var ErrNilMap = errors.New("timegraph: map is nil")

// ErrNegativeTurns indicates Build was asked for a negative turn horizon.
var ErrNegativeTurns = errors.New("timegraph: max turns must be >= 0")

// ErrNoStartHub indicates the map has no Start hub registered.
var ErrNoStartHub = errors.New("timegraph: no start hub")

// ErrNoEndHub indicates the map has no End hub registered.
var ErrNoEndHub = errors.New("timegraph: no end hub")

// ErrStartBlocked indicates the Start hub's own zone is Blocked, which
// would make the time-expanded graph degenerate (no node to depart from).
var ErrStartBlocked = errors.New("timegraph: start hub is blocked")
