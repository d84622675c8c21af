// Package timegraph unfolds a static simmap.Map across discrete turns
// into the time-expanded graph the scheduler searches.
//
// Nodes are addressed by a dense (hubIndex, turn) arena index rather
// than allocated as individually hashed (name, turn) structs: NodeID
// is a plain int, Graph.NodeAt packs it deterministically, and all
// per-node/per-edge bookkeeping (see internal/tracker) is backed by
// slices instead of maps.
package timegraph
