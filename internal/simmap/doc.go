// Package simmap defines the static, read-only input to the scheduling
// engine: Hub, Connection, Zone and the Map that ties them together.
//
// A Map is built once (typically by internal/mapfile) via Builder and
// is immutable from the scheduler's point of view afterward; the
// locking model below exists only so that diagnostic readers (the CLI
// summary, logging) can safely inspect a Map while it is still being
// assembled by a concurrent loader, not because the scheduling
// pipeline itself mutates a Map after Build.
//
// Hubs and Connections are value-like and compared by name; names are
// lower-cased at insertion time so lookups are case-insensitive, per
// the wire format's contract.
package simmap
