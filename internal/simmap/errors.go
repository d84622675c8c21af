package simmap

import "errors"

// Sentinel errors for Map construction and validation.
var (
	// ErrEmptyName indicates a hub or connection endpoint name was empty.
	ErrEmptyName = errors.New("simmap: name is empty")

	// ErrInvalidName indicates a hub name contained a space or a dash.
	ErrInvalidName = errors.New("simmap: name contains space or dash")

	// ErrDuplicateHub indicates a hub name was defined more than once.
	ErrDuplicateHub = errors.New("simmap: duplicate hub")

	// ErrDuplicateStart indicates more than one start_hub record was seen.
	ErrDuplicateStart = errors.New("simmap: duplicate start hub")

	// ErrDuplicateEnd indicates more than one end_hub record was seen.
	ErrDuplicateEnd = errors.New("simmap: duplicate end hub")

	// ErrDuplicateConnection indicates the same unordered pair was connected twice.
	ErrDuplicateConnection = errors.New("simmap: duplicate connection")

	// ErrSelfLoop indicates a connection named the same hub on both ends.
	ErrSelfLoop = errors.New("simmap: self-loop connection")

	// ErrUnknownHub indicates a connection referenced an undefined hub.
	ErrUnknownHub = errors.New("simmap: connection references unknown hub")

	// ErrMissingStart indicates no start_hub record was ever seen.
	ErrMissingStart = errors.New("simmap: missing start hub")

	// ErrMissingEnd indicates no end_hub record was ever seen.
	ErrMissingEnd = errors.New("simmap: missing end hub")

	// ErrSameStartEnd indicates the start and end hubs are identical.
	ErrSameStartEnd = errors.New("simmap: start and end hub are the same")

	// ErrInsufficientCapacity indicates start or end max_drones < nb_drones.
	ErrInsufficientCapacity = errors.New("simmap: start/end capacity below drone count")

	// ErrBadDroneCount indicates nb_drones < 1.
	ErrBadDroneCount = errors.New("simmap: nb_drones must be >= 1")

	// ErrBadCapacity indicates a max_drones or max_link_capacity < 1.
	ErrBadCapacity = errors.New("simmap: capacity must be >= 1")

	// ErrAsymmetricConnections indicates the internal connection map lost symmetry.
	ErrAsymmetricConnections = errors.New("simmap: connection map is not symmetric")
)
