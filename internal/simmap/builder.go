package simmap

import "strings"

// Builder assembles a Map one record at a time, in the order a parser
// encounters them, enforcing the per-record invariants (no duplicates,
// no self-loops, references must resolve) as each record arrives
// rather than after the fact. Cross-record invariants
// (start/end presence, capacity, symmetry) are left to Map.Validate,
// called by Finish.
type Builder struct {
	m *Map
}

// NewBuilder starts a Builder for a Map with the given fleet size.
func NewBuilder(nbDrones int) (*Builder, error) {
	m, err := NewMap(nbDrones)
	if err != nil {
		return nil, err
	}

	return &Builder{m: m}, nil
}

// normalizeName lower-cases and trims a hub/connection endpoint name.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// validHubName rejects empty names and names containing a space or the
// '-' connection separator.
func validHubName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if strings.ContainsAny(name, " -") {
		return ErrInvalidName
	}

	return nil
}

// NBDrones returns the fleet size this Builder's Map was created with.
func (b *Builder) NBDrones() int {
	return b.m.NBDrones()
}

// AddHub registers a new Intermediate hub. category is overridden to
// Start/End by AddStartHub/AddEndHub.
func (b *Builder) AddHub(name string, x, y, maxDrones int, zone Zone, color string) error {
	return b.addHub(name, x, y, maxDrones, zone, color, Intermediate)
}

// AddStartHub registers the map's single Start hub.
func (b *Builder) AddStartHub(name string, x, y, maxDrones int, zone Zone, color string) error {
	b.m.muHubs.RLock()
	already := b.m.startName != ""
	b.m.muHubs.RUnlock()
	if already {
		return ErrDuplicateStart
	}
	if err := b.addHub(name, x, y, maxDrones, zone, color, Start); err != nil {
		return err
	}

	b.m.muHubs.Lock()
	b.m.startName = normalizeName(name)
	b.m.muHubs.Unlock()

	return nil
}

// AddEndHub registers the map's single End hub.
func (b *Builder) AddEndHub(name string, x, y, maxDrones int, zone Zone, color string) error {
	b.m.muHubs.RLock()
	already := b.m.endName != ""
	b.m.muHubs.RUnlock()
	if already {
		return ErrDuplicateEnd
	}
	if err := b.addHub(name, x, y, maxDrones, zone, color, End); err != nil {
		return err
	}

	b.m.muHubs.Lock()
	b.m.endName = normalizeName(name)
	b.m.muHubs.Unlock()

	return nil
}

func (b *Builder) addHub(name string, x, y, maxDrones int, zone Zone, color string, cat NodeCategory) error {
	if err := validHubName(name); err != nil {
		return err
	}
	if maxDrones < 1 {
		return ErrBadCapacity
	}

	key := normalizeName(name)

	b.m.muHubs.Lock()
	defer b.m.muHubs.Unlock()

	if _, exists := b.m.hubs[key]; exists {
		return ErrDuplicateHub
	}

	b.m.hubs[key] = &Hub{
		Name:      key,
		X:         x,
		Y:         y,
		MaxDrones: maxDrones,
		Zone:      zone,
		Category:  cat,
		Color:     color,
	}

	return nil
}

// AddConnection registers an undirected link between two distinct,
// already-defined hubs, storing both directed arcs with a shared
// MaxLinkCapacity.
func (b *Builder) AddConnection(from, to string, maxLinkCapacity int) error {
	fromKey, toKey := normalizeName(from), normalizeName(to)
	if fromKey == toKey {
		return ErrSelfLoop
	}
	if maxLinkCapacity < 1 {
		return ErrBadCapacity
	}

	b.m.muHubs.RLock()
	_, fromOK := b.m.hubs[fromKey]
	_, toOK := b.m.hubs[toKey]
	b.m.muHubs.RUnlock()
	if !fromOK || !toOK {
		return ErrUnknownHub
	}

	b.m.muConn.Lock()
	defer b.m.muConn.Unlock()

	if _, exists := b.m.connections[fromKey][toKey]; exists {
		return ErrDuplicateConnection
	}
	if _, exists := b.m.connections[toKey][fromKey]; exists {
		return ErrDuplicateConnection
	}

	c := &Connection{From: fromKey, To: toKey, MaxLinkCapacity: maxLinkCapacity}
	back := &Connection{From: toKey, To: fromKey, MaxLinkCapacity: maxLinkCapacity}

	if b.m.connections[fromKey] == nil {
		b.m.connections[fromKey] = make(map[string]*Connection)
	}
	if b.m.connections[toKey] == nil {
		b.m.connections[toKey] = make(map[string]*Connection)
	}
	b.m.connections[fromKey][toKey] = c
	b.m.connections[toKey][fromKey] = back

	return nil
}

// Finish validates cross-record invariants and returns the built Map.
func (b *Builder) Finish() (*Map, error) {
	if err := b.m.Validate(); err != nil {
		return nil, err
	}

	return b.m, nil
}
