// Package reach estimates the turn horizon the time-expanded graph
// builder needs.
//
// EstimateMaxTurns runs a plain FIFO breadth-first search over the
// static map, skipping Blocked hubs and charging 2 accumulated-cost
// units to enter a Restricted hub instead of 1. This is deliberately
// not Dijkstra: the resulting bound is admissible-but-inexact, which
// is accepted because the result only sizes an upper bound on
// simulation length, never a committed path.
package reach
