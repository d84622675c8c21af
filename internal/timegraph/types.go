package timegraph

import "github.com/aerolane/fleetroute/internal/simmap"

// NodeID identifies a (hub, turn) pair by its position in the dense
// arena: NodeID = hubIndex*(MaxTurns+1) + turn.
type NodeID int

// EdgeID identifies an edge by its position in the graph's flat edge
// arena. It is stable for the lifetime of a Graph and is what
// internal/tracker uses to index its dense occupancy slices.
type EdgeID int

// Edge is a directed arc from one TimeNode to another, spanning
// Duration turns (1 for a wait edge or a move into a Normal hub, 2 for
// a move into a Restricted hub).
type Edge struct {
	ID          EdgeID
	From        NodeID
	To          NodeID
	Duration    int
	MaxCapacity int
}

// Graph is the time-expanded graph: one node per (non-Blocked hub,
// turn) pair for turn in [0, MaxTurns], plus wait and move edges
// connecting them.
type Graph struct {
	Map      *simmap.Map
	MaxTurns int

	hubs     []*simmap.Hub  // index = hubIndex
	hubIndex map[string]int // hub name -> hubIndex

	// out[nodeID] lists the EdgeIDs of edges leaving that node.
	out [][]EdgeID

	// edges is the flat arena; Edge.ID is its own index.
	edges []Edge
}

// NumNodes returns the number of (hub, turn) slots in the arena.
// Blocked hubs are excluded from the arena entirely at Build time, so
// no index here ever refers to one.
func (g *Graph) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the number of directed edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// NodeAt returns the arena index for (hubName, t). ok is false if
// hubName is unknown or t is out of [0, MaxTurns].
func (g *Graph) NodeAt(hubName string, t int) (NodeID, bool) {
	idx, ok := g.hubIndex[hubName]
	if !ok || t < 0 || t > g.MaxTurns {
		return 0, false
	}

	return NodeID(idx*(g.MaxTurns+1) + t), true
}

// Hub returns the static Hub backing a TimeNode.
func (g *Graph) Hub(n NodeID) *simmap.Hub {
	return g.hubs[int(n)/(g.MaxTurns+1)]
}

// Turn returns the discrete time step of a TimeNode.
func (g *Graph) Turn(n NodeID) int {
	return int(n) % (g.MaxTurns + 1)
}

// Edge returns the Edge with the given ID.
func (g *Graph) Edge(id EdgeID) *Edge {
	return &g.edges[id]
}

// Out returns the EdgeIDs leaving node n, in construction order (wait
// edge first, then move edges in ascending target hub name order,
// since Build sorts the result of simmap.Map.Neighbors before
// appending).
func (g *Graph) Out(n NodeID) []EdgeID {
	return g.out[n]
}
