package simmap

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Map is the validated, static input to the scheduling engine.
//
// muHubs guards hubs/start/end; muConn guards connections. The split
// keeps vertex and edge state under independent locks: the
// scheduling pipeline never mutates a Map concurrently, but a loader
// goroutine may still be appending hubs while a diagnostics goroutine
// reads Stats(), so the two lock domains stay independent to avoid
// unnecessary contention between them.
type Map struct {
	muHubs sync.RWMutex
	muConn sync.RWMutex

	// RunID correlates logs and CLI output for one parsed Map. It has
	// no effect on scheduling semantics.
	RunID uuid.UUID

	nbDrones int

	hubs      map[string]*Hub
	startName string
	endName   string

	// connections[source][target] = *Connection, kept symmetric: every
	// (u,v) entry has a matching (v,u) entry sharing MaxLinkCapacity.
	connections map[string]map[string]*Connection
}

// Stats is a read-only O(H+C) snapshot of a Map's size and configuration.
type Stats struct {
	NBDrones        int
	HubCount        int
	ConnectionCount int // unordered pairs, i.e. half of the directed arc count
	BlockedCount    int
	RestrictedCount int
	PriorityCount   int
}

// NewMap returns an empty Map with the given drone count. Use Builder
// to populate it, then call Validate before handing it to the reach/
// timegraph pipeline.
func NewMap(nbDrones int) (*Map, error) {
	if nbDrones < 1 {
		return nil, ErrBadDroneCount
	}

	return &Map{
		RunID:       uuid.New(),
		nbDrones:    nbDrones,
		hubs:        make(map[string]*Hub),
		connections: make(map[string]map[string]*Connection),
	}, nil
}

// NBDrones returns the configured fleet size.
func (m *Map) NBDrones() int {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	return m.nbDrones
}

// Hub returns the hub with the given (already lower-cased) name.
func (m *Map) Hub(name string) (*Hub, bool) {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	h, ok := m.hubs[name]
	return h, ok
}

// Hubs returns a shallow copy of the hub catalog, keyed by name.
func (m *Map) Hubs() map[string]*Hub {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	out := make(map[string]*Hub, len(m.hubs))
	for k, v := range m.hubs {
		out[k] = v
	}

	return out
}

// StartHub returns the single Start hub. Validate must have succeeded
// for this to be non-nil.
func (m *Map) StartHub() (*Hub, bool) {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	h, ok := m.hubs[m.startName]
	return h, ok
}

// EndHub returns the single End hub. Validate must have succeeded for
// this to be non-nil.
func (m *Map) EndHub() (*Hub, bool) {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	h, ok := m.hubs[m.endName]
	return h, ok
}

// Neighbors returns the outgoing connections from the named hub, keyed
// by target hub name. The returned map is a live reference and must
// not be mutated by callers.
func (m *Map) Neighbors(name string) map[string]*Connection {
	m.muConn.RLock()
	defer m.muConn.RUnlock()

	return m.connections[name]
}

// Stats computes an O(H+C) summary of the map's contents.
func (m *Map) Stats() Stats {
	m.muHubs.RLock()
	s := Stats{NBDrones: m.nbDrones, HubCount: len(m.hubs)}
	for _, h := range m.hubs {
		switch h.Zone {
		case Blocked:
			s.BlockedCount++
		case Restricted:
			s.RestrictedCount++
		case Priority:
			s.PriorityCount++
		}
	}
	m.muHubs.RUnlock()

	m.muConn.RLock()
	pairs := 0
	for _, targets := range m.connections {
		pairs += len(targets)
	}
	m.muConn.RUnlock()
	s.ConnectionCount = pairs / 2

	return s
}

// Validate checks the SimulationMap's structural invariants: start
// and end exist and are distinct, their capacities accommodate the
// fleet, and the connection map is symmetric.
func (m *Map) Validate() error {
	m.muHubs.RLock()
	defer m.muHubs.RUnlock()

	start, ok := m.hubs[m.startName]
	if !ok {
		return ErrMissingStart
	}
	end, ok := m.hubs[m.endName]
	if !ok {
		return ErrMissingEnd
	}
	if start.Name == end.Name {
		return ErrSameStartEnd
	}
	if start.MaxDrones < m.nbDrones || end.MaxDrones < m.nbDrones {
		return fmt.Errorf("%w: start=%d end=%d nb_drones=%d",
			ErrInsufficientCapacity, start.MaxDrones, end.MaxDrones, m.nbDrones)
	}

	m.muConn.RLock()
	defer m.muConn.RUnlock()
	for from, targets := range m.connections {
		for to, c := range targets {
			back, ok := m.connections[to][from]
			if !ok || back.MaxLinkCapacity != c.MaxLinkCapacity {
				return fmt.Errorf("%w: %s-%s", ErrAsymmetricConnections, from, to)
			}
		}
	}

	return nil
}
