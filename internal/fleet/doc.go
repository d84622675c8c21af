// Package fleet schedules an entire drone fleet over a simmap.Map by
// calling internal/pathfind once per drone against a shared
// internal/tracker, in ascending drone-id order.
//
// Scheduling is strictly sequential: drone 1 searches an empty
// tracker and typically gets the shortest path; each later drone
// searches against the capacity already consumed by its
// predecessors, so it is pushed to detours or later turns. A drone
// for which no path exists is a non-fatal scheduling failure — it is
// logged and excluded from the output, and the run continues for the
// remaining drones.
//
// Run also turns the resulting set of paths into the turn-by-turn
// movement lines a caller (cmd/fleetroute) actually prints.
package fleet
