package reach

import "errors"

// ErrNilMap indicates a nil *simmap.Map was passed to EstimateMaxTurns.
var ErrNilMap = errors.New("reach: map is nil")

// ErrNoStartHub indicates the map has no Start hub registered.
var ErrNoStartHub = errors.New("reach: no start hub")
