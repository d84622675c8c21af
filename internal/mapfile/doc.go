// Package mapfile reads the line-oriented text map format into a
// simmap.Map.
//
// Grammar (one record per line; blank lines and '#'-prefixed lines
// are comments; key and value are separated by the first ':'):
//
//	nb_drones: <int>=1
//	start_hub: <name> <x> <y> [key=value ...]
//	end_hub:   <name> <x> <y> [key=value ...]
//	hub:       <name> <x> <y> [key=value ...]
//	connection: <source>-<target> [key=value ...]
//
// nb_drones must be the first non-comment record. Optional key=value
// pairs are space-separated inside a single trailing [...] block;
// recognized hub keys are zone, color, max_drones, and the only
// recognized connection key is max_link_capacity — an unrecognized
// key anywhere in a block is a parse error, not silently ignored.
//
// A start_hub or end_hub record that omits max_drones defaults it to
// the map's nb_drones rather than 1, since the start and end hubs
// must always accommodate the whole fleet at once; an ordinary hub
// record defaults to 1.
package mapfile
