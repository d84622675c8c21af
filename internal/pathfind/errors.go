package pathfind

import "errors"

// ErrNilGraph indicates a nil *timegraph.Graph was passed to Solve.
var ErrNilGraph = errors.New("pathfind: graph is nil")

// ErrNilTracker indicates a nil *tracker.Tracker was passed to Solve.
var ErrNilTracker = errors.New("pathfind: tracker is nil")

// ErrUnknownStart indicates the requested start hub has no node at t=0.
var ErrUnknownStart = errors.New("pathfind: start hub has no node at t=0")
