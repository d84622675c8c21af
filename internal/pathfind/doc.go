// Package pathfind runs a single drone's route search over a
// timegraph.Graph, gated by a tracker.Tracker.
//
// The search is a modified Dijkstra keyed lexicographically by
// (turns, -priorityCount): primary cost is elapsed turns (the
// target node's own turn, since all edges move strictly forward in
// time); secondary cost maximizes the number of PRIORITY-zone hubs
// visited along the way, including the start hub itself if it is
// PRIORITY. A monotonic insertion counter breaks remaining ties so
// that two runs over the same inputs expand nodes in the same order.
//
// Capacity is read-only here: Solve consults the tracker's CanUseEdge
// and CanEnterNode but never reserves. The caller (internal/fleet)
// commits the winning path's reservation once Solve returns, matching
// the strictly sequential, greedy scheduling order of the fleet as a
// whole.
package pathfind
