package timegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerolane/fleetroute/internal/simmap"
	"github.com/aerolane/fleetroute/internal/timegraph"
)

func mustBuilder(t *testing.T, nbDrones int) *simmap.Builder {
	t.Helper()
	b, err := simmap.NewBuilder(nbDrones)
	require.NoError(t, err)
	return b
}

func TestBuild_LinearMapNodeAndEdgeCounts(t *testing.T) {
	b := mustBuilder(t, 1)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("wp", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "wp", 5))
	require.NoError(t, b.AddConnection("wp", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 3)
	require.NoError(t, err)

	// 3 hubs * (3+1) turns = 12 nodes.
	assert.Equal(t, 12, g.NumNodes())

	// Wait edges: 3 hubs * 3 (t=0..2) = 9.
	// Move edges per direction per turn where t+1<=3: start->wp (3), wp->end (3),
	// plus the symmetric wp->start (3) and end->wp (3) = 12 move edges.
	assert.Equal(t, 9+12, g.NumEdges())
}

func TestBuild_BlockedHubExcluded(t *testing.T) {
	b := mustBuilder(t, 1)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("blocked", 0, 0, 5, simmap.Blocked, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "blocked", 5))
	require.NoError(t, b.AddConnection("blocked", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 2)
	require.NoError(t, err)

	// Only start and end get nodes: 2 hubs * 3 turns = 6.
	assert.Equal(t, 6, g.NumNodes())

	_, ok := g.NodeAt("blocked", 0)
	assert.False(t, ok)

	// No move edges: start only connects to the blocked hub, and the
	// blocked hub is never a valid target.
	assert.Equal(t, 4, g.NumEdges()) // just the wait edges: 2 hubs * 2 (t=0..1)
}

func TestBuild_RestrictedHubUsesDurationTwo(t *testing.T) {
	b := mustBuilder(t, 1)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddHub("r", 0, 0, 5, simmap.Restricted, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "r", 5))
	require.NoError(t, b.AddConnection("r", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 4)
	require.NoError(t, err)

	from, ok := g.NodeAt("start", 0)
	require.True(t, ok)

	var found bool
	for _, eid := range g.Out(from) {
		e := g.Edge(eid)
		if g.Hub(e.To).Name == "r" {
			found = true
			assert.Equal(t, 2, e.Duration)
			assert.Equal(t, 2, g.Turn(e.To))
		}
	}
	assert.True(t, found, "expected a move edge from start to r")
}

func TestBuild_EdgesPastMaxTurnsAreDropped(t *testing.T) {
	b := mustBuilder(t, 1)
	require.NoError(t, b.AddStartHub("start", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddEndHub("end", 0, 0, 5, simmap.Normal, ""))
	require.NoError(t, b.AddConnection("start", "end", 5))
	m, err := b.Finish()
	require.NoError(t, err)

	g, err := timegraph.Build(m, 0)
	require.NoError(t, err)

	// maxTurns=0: no wait edges (t<0 never true), no move edges (t+1<=0 never true).
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, 2, g.NumNodes())
}
