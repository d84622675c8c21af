package mapfile

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Parse. Callers should branch with
// errors.Is; line context is attached via %w at the call site, never
// baked into the sentinel message itself.
var (
	// ErrDronesNotFirst indicates a hub or connection record appeared
	// before nb_drones was declared.
	ErrDronesNotFirst = errors.New("mapfile: nb_drones must appear before any hub or connection record")

	// ErrDuplicateNBDrones indicates more than one nb_drones record.
	ErrDuplicateNBDrones = errors.New("mapfile: duplicate nb_drones record")

	// ErrUnknownRecord indicates a record type keyword outside the
	// recognized set (nb_drones, start_hub, end_hub, hub, connection).
	ErrUnknownRecord = errors.New("mapfile: unknown record type")

	// ErrMalformedRecord indicates a record missing its mandatory
	// positional fields, or a numeric field that failed to parse.
	ErrMalformedRecord = errors.New("mapfile: malformed record")

	// ErrMalformedOptionBlock indicates a [...] block that is not
	// properly bracketed, or whose internal key=value pairs are not
	// well formed.
	ErrMalformedOptionBlock = errors.New("mapfile: malformed option block")

	// ErrUnknownOptionKey indicates a key inside a [...] block that is
	// not recognized for that record type.
	ErrUnknownOptionKey = errors.New("mapfile: unknown option key")

	// ErrUnknownZone indicates a zone=... value outside
	// {normal, blocked, restricted, priority}.
	ErrUnknownZone = errors.New("mapfile: unknown zone")

	// ErrBadConnectionFormat indicates a connection record whose
	// "source-target" field does not contain exactly one dash.
	ErrBadConnectionFormat = errors.New("mapfile: connection must be source-target")
)

// lineErrorf wraps err with the 1-based line number it occurred on.
func lineErrorf(lineNo int, err error) error {
	return fmt.Errorf("mapfile: line %d: %w", lineNo, err)
}
