package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cast"

	"github.com/aerolane/fleetroute/internal/simmap"
)

var hubAllowedKeys = map[string]bool{"zone": true, "color": true, "max_drones": true}

var connectionAllowedKeys = map[string]bool{"max_link_capacity": true}

// Parse reads a map-file document from r and returns the validated
// simmap.Map it describes.
func Parse(r io.Reader) (*simmap.Map, error) {
	scanner := bufio.NewScanner(r)

	var b *simmap.Builder
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, rest, ok := splitRecord(line)
		if !ok {
			return nil, lineErrorf(lineNo, fmt.Errorf("%w: missing ':' separator", ErrMalformedRecord))
		}

		switch key {
		case "nb_drones":
			if b != nil {
				return nil, lineErrorf(lineNo, ErrDuplicateNBDrones)
			}
			n, err := cast.ToIntE(rest)
			if err != nil {
				return nil, lineErrorf(lineNo, fmt.Errorf("%w: nb_drones %q", ErrMalformedRecord, rest))
			}
			b, err = simmap.NewBuilder(n)
			if err != nil {
				return nil, lineErrorf(lineNo, err)
			}

		case "start_hub", "end_hub", "hub":
			if b == nil {
				return nil, lineErrorf(lineNo, ErrDronesNotFirst)
			}
			if err := parseHubRecord(b, key, rest); err != nil {
				return nil, lineErrorf(lineNo, err)
			}

		case "connection":
			if b == nil {
				return nil, lineErrorf(lineNo, ErrDronesNotFirst)
			}
			if err := parseConnectionRecord(b, rest); err != nil {
				return nil, lineErrorf(lineNo, err)
			}

		default:
			return nil, lineErrorf(lineNo, fmt.Errorf("%w: %q", ErrUnknownRecord, key))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapfile: reading input: %w", err)
	}
	if b == nil {
		return nil, ErrDronesNotFirst
	}

	return b.Finish()
}

// ParseFile opens path and parses it as a map-file document.
func ParseFile(path string) (*simmap.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// splitRecord divides a non-comment line into its lower-cased key and
// the raw (untrimmed-further) remainder after the first ':'.
func splitRecord(line string) (key, rest string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}

	return strings.ToLower(strings.TrimSpace(line[:idx])), strings.TrimSpace(line[idx+1:]), true
}

func parseHubRecord(b *simmap.Builder, key, rest string) error {
	fields, block, err := splitFieldsAndBlock(rest)
	if err != nil {
		return err
	}
	if len(fields) < 3 {
		return fmt.Errorf("%w: hub requires name, x and y", ErrMalformedRecord)
	}

	name := fields[0]
	x, err := cast.ToIntE(fields[1])
	if err != nil {
		return fmt.Errorf("%w: x=%q", ErrMalformedRecord, fields[1])
	}
	y, err := cast.ToIntE(fields[2])
	if err != nil {
		return fmt.Errorf("%w: y=%q", ErrMalformedRecord, fields[2])
	}

	opts, err := parseOptionBlock(block, hubAllowedKeys)
	if err != nil {
		return err
	}

	zone := simmap.Normal
	if v, ok := opts["zone"]; ok {
		z, ok := simmap.ParseZone(strings.ToLower(v))
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownZone, v)
		}
		zone = z
	}

	color := opts["color"]

	// start_hub and end_hub default max_drones to the fleet size, since
	// every drone must be able to occupy them at once; an ordinary hub
	// defaults to 1.
	maxDrones := 1
	if key != "hub" {
		maxDrones = b.NBDrones()
	}
	if v, ok := opts["max_drones"]; ok {
		md, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%w: max_drones=%q", ErrMalformedRecord, v)
		}
		maxDrones = md
	}

	switch key {
	case "start_hub":
		return b.AddStartHub(name, x, y, maxDrones, zone, color)
	case "end_hub":
		return b.AddEndHub(name, x, y, maxDrones, zone, color)
	default:
		return b.AddHub(name, x, y, maxDrones, zone, color)
	}
}

func parseConnectionRecord(b *simmap.Builder, rest string) error {
	fields, block, err := splitFieldsAndBlock(rest)
	if err != nil {
		return err
	}
	if len(fields) < 1 {
		return fmt.Errorf("%w: missing source-target", ErrMalformedRecord)
	}

	parts := strings.Split(fields[0], "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("%w: %q", ErrBadConnectionFormat, fields[0])
	}

	opts, err := parseOptionBlock(block, connectionAllowedKeys)
	if err != nil {
		return err
	}

	capacity := 1
	if v, ok := opts["max_link_capacity"]; ok {
		c, err := cast.ToIntE(v)
		if err != nil {
			return fmt.Errorf("%w: max_link_capacity=%q", ErrMalformedRecord, v)
		}
		capacity = c
	}

	return b.AddConnection(parts[0], parts[1], capacity)
}

// splitFieldsAndBlock separates a record's positional whitespace-
// delimited fields from its trailing [key=value ...] block, if any.
func splitFieldsAndBlock(rest string) (fields []string, block string, err error) {
	idx := strings.Index(rest, "[")
	if idx < 0 {
		return strings.Fields(rest), "", nil
	}

	prefix := strings.TrimSpace(rest[:idx])
	block = strings.TrimSpace(rest[idx:])
	if !strings.HasSuffix(block, "]") {
		return nil, "", ErrMalformedOptionBlock
	}

	return strings.Fields(prefix), block, nil
}

// parseOptionBlock parses a "[key=value key=value ...]" block, given
// the set of recognized keys for the record type it belongs to.
func parseOptionBlock(block string, allowed map[string]bool) (map[string]string, error) {
	if block == "" {
		return nil, nil
	}

	content := strings.TrimSpace(block[1 : len(block)-1])
	out := make(map[string]string)
	if content == "" {
		return out, nil
	}

	for _, pair := range strings.Fields(content) {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedOptionBlock, pair)
		}

		key := strings.ToLower(kv[0])
		if !allowed[key] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOptionKey, key)
		}
		out[key] = kv[1]
	}

	return out, nil
}
