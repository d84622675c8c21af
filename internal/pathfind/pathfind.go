package pathfind

import (
	"container/heap"

	"github.com/aerolane/fleetroute/internal/simmap"
	"github.com/aerolane/fleetroute/internal/timegraph"
	"github.com/aerolane/fleetroute/internal/tracker"
)

// Path is one drone's route through the time-expanded graph: Nodes
// has one more entry than Edges, Nodes[i+1] being the target of
// Edges[i].
type Path struct {
	Nodes []timegraph.NodeID
	Edges []timegraph.EdgeID
}

// Solve searches for the best route from (startHub, t=0) to any END
// node, under the capacity constraints trk currently records. It does
// not mutate trk. ok is false if no route exists; err is non-nil only
// for malformed input.
func Solve(g *timegraph.Graph, trk *tracker.Tracker, startHub string) (path *Path, ok bool, err error) {
	if g == nil {
		return nil, false, ErrNilGraph
	}
	if trk == nil {
		return nil, false, ErrNilTracker
	}

	start, found := g.NodeAt(startHub, 0)
	if !found {
		return nil, false, ErrUnknownStart
	}

	r := &runner{g: g, trk: trk}
	return r.run(start)
}

// runner holds the mutable search state for one Solve call.
type runner struct {
	g   *timegraph.Graph
	trk *tracker.Tracker

	closed map[timegraph.NodeID]bool

	bestTurn     map[timegraph.NodeID]int
	bestPriority map[timegraph.NodeID]int

	parentNode map[timegraph.NodeID]timegraph.NodeID
	parentEdge map[timegraph.NodeID]timegraph.EdgeID
	hasParent  map[timegraph.NodeID]bool

	pq  nodePQ
	seq int
}

func (r *runner) run(start timegraph.NodeID) (*Path, bool, error) {
	r.closed = make(map[timegraph.NodeID]bool)
	r.bestTurn = make(map[timegraph.NodeID]int)
	r.bestPriority = make(map[timegraph.NodeID]int)
	r.parentNode = make(map[timegraph.NodeID]timegraph.NodeID)
	r.parentEdge = make(map[timegraph.NodeID]timegraph.EdgeID)
	r.hasParent = make(map[timegraph.NodeID]bool)

	startPriority := 0
	if r.g.Hub(start).Zone == simmap.Priority {
		startPriority = 1
	}

	r.bestTurn[start] = r.g.Turn(start)
	r.bestPriority[start] = startPriority

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{
		node:     start,
		turn:     r.g.Turn(start),
		priority: startPriority,
		seq:      r.nextSeq(),
	})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		n := item.node

		if r.closed[n] {
			continue
		}
		r.closed[n] = true

		if r.g.Hub(n).Category == simmap.End {
			return r.reconstruct(n), true, nil
		}

		r.relax(n, item.turn, item.priority)
	}

	return nil, false, nil
}

func (r *runner) relax(n timegraph.NodeID, turn, priority int) {
	for _, eid := range r.g.Out(n) {
		e := r.g.Edge(eid)
		target := e.To

		if r.closed[target] {
			continue
		}
		if !r.trk.CanUseEdge(eid) {
			continue
		}
		if !r.isStartAtZero(target) && !r.trk.CanEnterNode(target) {
			continue
		}

		targetPriority := priority
		if r.g.Hub(target).Zone == simmap.Priority {
			targetPriority++
		}
		targetTurn := r.g.Turn(target)

		if !r.improves(target, targetTurn, targetPriority) {
			continue
		}

		r.bestTurn[target] = targetTurn
		r.bestPriority[target] = targetPriority
		r.parentNode[target] = n
		r.parentEdge[target] = eid
		r.hasParent[target] = true

		heap.Push(&r.pq, &nodeItem{
			node:     target,
			turn:     targetTurn,
			priority: targetPriority,
			seq:      r.nextSeq(),
		})
	}
}

// isStartAtZero reports whether n is a START node at t=0; such a node
// is never capacity-checked on entry. In practice
// this never fires during relaxation, since every edge moves strictly
// forward in time and t=0 can only be the very first node of a
// search, but the check is kept explicit to mirror the rule as stated.
func (r *runner) isStartAtZero(n timegraph.NodeID) bool {
	return r.g.Turn(n) == 0 && r.g.Hub(n).Category == simmap.Start
}

// improves reports whether (turn, -priority) is strictly better than
// the best key recorded so far for n (or n has no recorded key yet).
func (r *runner) improves(n timegraph.NodeID, turn, priority int) bool {
	bestTurn, seen := r.bestTurn[n]
	if !seen {
		return true
	}
	if turn != bestTurn {
		return turn < bestTurn
	}

	return priority > r.bestPriority[n]
}

func (r *runner) nextSeq() int {
	r.seq++
	return r.seq
}

func (r *runner) reconstruct(end timegraph.NodeID) *Path {
	var nodes []timegraph.NodeID
	var edges []timegraph.EdgeID

	n := end
	for {
		nodes = append([]timegraph.NodeID{n}, nodes...)
		if !r.hasParent[n] {
			break
		}
		edges = append([]timegraph.EdgeID{r.parentEdge[n]}, edges...)
		n = r.parentNode[n]
	}

	return &Path{Nodes: nodes, Edges: edges}
}

// nodeItem is one entry in the search frontier.
type nodeItem struct {
	node     timegraph.NodeID
	turn     int
	priority int
	seq      int
}

// nodePQ orders nodeItems by (turn asc, priority desc, seq asc), the
// lexicographic key the search is keyed on, plus a deterministic tertiary
// tie-break.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.turn != b.turn {
		return a.turn < b.turn
	}
	if a.priority != b.priority {
		return a.priority > b.priority
	}

	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
