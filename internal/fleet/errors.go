package fleet

import "errors"

// ErrNilMap indicates a nil *simmap.Map was passed to Run.
var ErrNilMap = errors.New("fleet: map is nil")

// ErrUnreachableEnd indicates no End hub is reachable from Start at
// all; this is a structural error, distinct from a per-drone
// scheduling failure.
var ErrUnreachableEnd = errors.New("fleet: end hub is unreachable from start")

// ErrDroneUnscheduled indicates a single drone for which the solver
// found no path under the tracker state current at its turn. It is
// wrapped with the drone id and aggregated via multierr rather than
// returned alone; it never aborts the run.
var ErrDroneUnscheduled = errors.New("fleet: no path found for drone")
