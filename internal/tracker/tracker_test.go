package tracker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolane/fleetroute/internal/simmap"
	"github.com/aerolane/fleetroute/internal/timegraph"
	"github.com/aerolane/fleetroute/internal/tracker"
)

func buildGraph(t *testing.T, linkCap, hubCap int) *timegraph.Graph {
	t.Helper()
	b, err := simmap.NewBuilder(1)
	require.NoError(t, err)
	require.NoError(t, b.AddStartHub("start", 0, 0, hubCap, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, hubCap, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "end", linkCap))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 2)
	require.NoError(t, err)

	return g
}

func TestTracker_EdgeCapacityEnforced(t *testing.T) {
	g := buildGraph(t, 1, 5)
	trk := tracker.New(g)

	from, ok := g.NodeAt("start", 0)
	require.True(t, ok)
	var moveEdge timegraph.EdgeID
	for _, eid := range g.Out(from) {
		if g.Hub(g.Edge(eid).To).Name == "end" {
			moveEdge = eid
		}
	}

	assert.True(t, trk.CanUseEdge(moveEdge))
	trk.ReserveEdge(moveEdge)
	assert.False(t, trk.CanUseEdge(moveEdge))
	assert.Panics(t, func() { trk.ReserveEdge(moveEdge) })
}

func TestTracker_NodeCapacityEnforced(t *testing.T) {
	g := buildGraph(t, 5, 1)
	trk := tracker.New(g)

	n, ok := g.NodeAt("end", 1)
	require.True(t, ok)

	assert.True(t, trk.CanEnterNode(n))
	trk.ReserveNode(n)
	assert.False(t, trk.CanEnterNode(n))
	assert.Panics(t, func() { trk.ReserveNode(n) })
}

func TestTracker_RestrictedEdgeOccupiesBothTurns(t *testing.T) {
	b, err := simmap.NewBuilder(1)
	require.NoError(t, err)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("r", 0, 0, 5, simmap.Restricted, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "r", 1))
	require.NoError(t, b.AddConnection("r", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)
	trk := tracker.New(g)

	from, ok := g.NodeAt("start", 0)
	require.True(t, ok)
	var toR timegraph.EdgeID
	for _, eid := range g.Out(from) {
		if g.Hub(g.Edge(eid).To).Name == "r" {
			toR = eid
		}
	}
	require.Equal(t, 2, g.Edge(toR).Duration)

	trk.ReserveEdge(toR)
	// Capacity 1, duration 2: the single reservation should have
	// consumed both of the edge's occupied turns.
	assert.False(t, trk.CanUseEdge(toR))
}
