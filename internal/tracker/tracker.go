package tracker

import (
	"fmt"

	"github.com/aerolane/fleetroute/internal/timegraph"
)

// Tracker records edge-turn and node-turn occupancy against a single
// timegraph.Graph. A Tracker is not safe for concurrent use; the
// fleet scheduler that owns one only ever calls it from a single
// goroutine while solving one drone's route at a time.
type Tracker struct {
	g *timegraph.Graph

	// edgeOcc[edgeID*2+offset] counts reservations of that edge at
	// departure-turn+offset, offset in {0,1}.
	edgeOcc []int

	// nodeOcc[nodeID] counts reservations of that (hub, turn) slot.
	nodeOcc []int
}

// New returns a Tracker with zero occupancy over g.
func New(g *timegraph.Graph) *Tracker {
	return &Tracker{
		g:       g,
		edgeOcc: make([]int, g.NumEdges()*2),
		nodeOcc: make([]int, g.NumNodes()),
	}
}

// CanUseEdge reports whether the edge has spare capacity at every
// turn it occupies (its departure turn, and the turn after if its
// Duration is 2).
func (t *Tracker) CanUseEdge(id timegraph.EdgeID) bool {
	e := t.g.Edge(id)
	for offset := 0; offset < e.Duration; offset++ {
		if t.edgeOcc[int(id)*2+offset] >= e.MaxCapacity {
			return false
		}
	}

	return true
}

// CanEnterNode reports whether the (hub, turn) slot has spare
// occupancy for one more drone.
func (t *Tracker) CanEnterNode(id timegraph.NodeID) bool {
	return t.nodeOcc[id] < t.g.Hub(id).MaxDrones
}

// ReserveEdge increments occupancy for every turn id occupies. It
// panics if the edge was not CanUseEdge at the time of the call: a
// caller reserving a full edge is an internal invariant violation,
// not a recoverable scheduling outcome.
func (t *Tracker) ReserveEdge(id timegraph.EdgeID) {
	e := t.g.Edge(id)
	for offset := 0; offset < e.Duration; offset++ {
		idx := int(id)*2 + offset
		if t.edgeOcc[idx] >= e.MaxCapacity {
			panic(fmt.Sprintf("tracker: edge %d over capacity at offset %d", id, offset))
		}
		t.edgeOcc[idx]++
	}
}

// ReserveNode increments occupancy of the (hub, turn) slot. It panics
// under the same over-capacity condition as ReserveEdge.
func (t *Tracker) ReserveNode(id timegraph.NodeID) {
	if t.nodeOcc[id] >= t.g.Hub(id).MaxDrones {
		panic(fmt.Sprintf("tracker: node %d over capacity", id))
	}
	t.nodeOcc[id]++
}
