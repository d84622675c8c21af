package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolane/fleetroute/internal/pathfind"
	"github.com/aerolane/fleetroute/internal/simmap"
	"github.com/aerolane/fleetroute/internal/timegraph"
	"github.com/aerolane/fleetroute/internal/tracker"
)

func buildMap(t *testing.T) *simmap.Builder {
	t.Helper()
	b, err := simmap.NewBuilder(2)
	require.NoError(t, err)
	return b
}

func TestSolve_FindsShortestPath(t *testing.T) {
	b := buildMap(t)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("wp", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "wp", 5))
	require.NoError(t, b.AddConnection("wp", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)
	trk := tracker.New(g)

	path, ok, err := pathfind.Solve(g, trk, "start")
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, path.Nodes, 3)
	assert.Equal(t, "end", g.Hub(path.Nodes[len(path.Nodes)-1]).Name)
	assert.Equal(t, 2, g.Turn(path.Nodes[len(path.Nodes)-1]))
}

func TestSolve_PriorityTieBreak(t *testing.T) {
	b := buildMap(t)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("a", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("p", 0, 0, 5, simmap.Priority, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "a", 5))
	require.NoError(t, b.AddConnection("a", "end", 5))
	require.NoError(t, b.AddConnection("start", "p", 5))
	require.NoError(t, b.AddConnection("p", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)
	trk := tracker.New(g)

	path, ok, err := pathfind.Solve(g, trk, "start")
	require.NoError(t, err)
	require.True(t, ok)

	require.Len(t, path.Nodes, 3)
	mid := g.Hub(path.Nodes[1])
	assert.Equal(t, "p", mid.Name, "equal-length paths should prefer the PRIORITY hub")
}

func TestSolve_CapacityExhaustedRoutesAround(t *testing.T) {
	b := buildMap(t)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("a", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("b", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "a", 1))
	require.NoError(t, b.AddConnection("a", "end", 1))
	require.NoError(t, b.AddConnection("start", "b", 5))
	require.NoError(t, b.AddConnection("b", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)
	trk := tracker.New(g)

	first, ok, err := pathfind.Solve(g, trk, "start")
	require.NoError(t, err)
	require.True(t, ok)
	for _, eid := range first.Edges {
		trk.ReserveEdge(eid)
	}
	for _, n := range first.Nodes[1:] {
		trk.ReserveNode(n)
	}

	second, ok, err := pathfind.Solve(g, trk, "start")
	require.NoError(t, err)
	require.True(t, ok)

	assert.NotEqual(t, first.Nodes[1], second.Nodes[1], "second drone should route around the exhausted link")
}

func TestSolve_NoPathReturnsFalse(t *testing.T) {
	b := buildMap(t)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)
	trk := tracker.New(g)

	_, ok, err := pathfind.Solve(g, trk, "start")
	require.NoError(t, err)
	assert.False(t, ok)
}
