package timegraph

import (
	"sort"

	"github.com/aerolane/fleetroute/internal/simmap"
)

// Build unfolds m across turns 0..maxTurns into the time-expanded
// graph:
//
//   - one TimeNode per (non-Blocked hub, turn) pair;
//   - a wait edge (h,t)->(h,t+1) for every non-Blocked hub and every
//     t < maxTurns, capacity h.MaxDrones;
//   - a move edge (u,t)->(v,t+d) for every static connection u-v and
//     every t such that t+d <= maxTurns, where d is 2 if v's zone is
//     Restricted and 1 otherwise, capacity conn.MaxLinkCapacity. Since
//     simmap.Map stores connections symmetrically, iterating every
//     hub's Neighbors naturally produces both (u,t)->(v,t+d) and
//     (v,t)->(u,t+d').
//
// Blocked hubs get no nodes and no edges at all: a drone can neither
// wait there nor pass through.
func Build(m *simmap.Map, maxTurns int) (*Graph, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if maxTurns < 0 {
		return nil, ErrNegativeTurns
	}
	start, ok := m.StartHub()
	if !ok {
		return nil, ErrNoStartHub
	}
	if _, ok := m.EndHub(); !ok {
		return nil, ErrNoEndHub
	}
	if start.Zone == simmap.Blocked {
		return nil, ErrStartBlocked
	}

	hubs := m.Hubs()
	names := make([]string, 0, len(hubs))
	for name, h := range hubs {
		if h.Zone == simmap.Blocked {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	g := &Graph{
		Map:      m,
		MaxTurns: maxTurns,
		hubs:     make([]*simmap.Hub, len(names)),
		hubIndex: make(map[string]int, len(names)),
	}
	for i, name := range names {
		g.hubs[i] = hubs[name]
		g.hubIndex[name] = i
	}

	g.out = make([][]EdgeID, len(names)*(maxTurns+1))

	for _, name := range names {
		hub := hubs[name]

		for t := 0; t < maxTurns; t++ {
			from, ok := g.NodeAt(name, t)
			if !ok {
				continue
			}
			to, _ := g.NodeAt(name, t+1)
			g.addEdge(from, to, 1, hub.MaxDrones)
		}

		targets := make([]string, 0, len(m.Neighbors(name)))
		for target := range m.Neighbors(name) {
			targets = append(targets, target)
		}
		sort.Strings(targets)

		for _, target := range targets {
			targetHub, ok := hubs[target]
			if !ok || targetHub.Zone == simmap.Blocked {
				continue
			}
			conn := m.Neighbors(name)[target]
			duration := targetHub.Zone.TravelDuration()

			for t := 0; t+duration <= maxTurns; t++ {
				from, ok := g.NodeAt(name, t)
				if !ok {
					continue
				}
				to, ok := g.NodeAt(target, t+duration)
				if !ok {
					continue
				}
				g.addEdge(from, to, duration, conn.MaxLinkCapacity)
			}
		}
	}

	return g, nil
}

func (g *Graph) addEdge(from, to NodeID, duration, capacity int) {
	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{
		ID:          id,
		From:        from,
		To:          to,
		Duration:    duration,
		MaxCapacity: capacity,
	})
	g.out[from] = append(g.out[from], id)
}
