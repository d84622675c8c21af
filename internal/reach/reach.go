package reach

import (
	"context"

	"github.com/aerolane/fleetroute/internal/simmap"
)

// Unreachable is returned by EstimateMaxTurns when no End hub can be
// reached from Start at all (the sentinel -1).
const Unreachable = -1

// queueItem pairs a hub name with the accumulated cost to reach it.
type queueItem struct {
	name string
	cost int
}

// walker holds the mutable BFS state for one EstimateMaxTurns call.
type walker struct {
	m       *simmap.Map
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
}

// EstimateMaxTurns returns the turn budget for time-expanded graph
// expansion: min_path_to_any_end + (nb_drones - 1), or Unreachable if
// no End hub is reachable from Start.
//
// The search is a plain FIFO BFS, not Dijkstra: ties at the same queue
// depth resolve in insertion order, and a hub already marked visited
// is skipped when popped even if it was pushed more than once before
// being visited. With mixed 1/2-cost edges (Restricted hubs cost 2 to
// enter) this is an admissible upper bound, not an exact shortest
// path — sufficient here because the result only sizes the time
// horizon, never commits a route.
func EstimateMaxTurns(ctx context.Context, m *simmap.Map) (int, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	start, ok := m.StartHub()
	if !ok {
		return 0, ErrNoStartHub
	}

	minPath, err := minPathToEnd(ctx, m, start.Name)
	if err != nil {
		return 0, err
	}
	if minPath < 0 {
		return Unreachable, nil
	}

	return minPath + m.NBDrones() - 1, nil
}

// minPathToEnd runs the FIFO BFS described above and returns the
// accumulated cost to the first End hub popped, or -1 if none reachable.
func minPathToEnd(ctx context.Context, m *simmap.Map, startName string) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{
		m:       m,
		ctx:     ctx,
		queue:   []queueItem{{name: startName, cost: 0}},
		visited: make(map[string]bool),
	}

	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return 0, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		if w.visited[item.name] {
			continue
		}

		hub, ok := w.m.Hub(item.name)
		if !ok || hub.Zone == simmap.Blocked {
			continue
		}
		if hub.Category == simmap.End {
			return item.cost, nil
		}

		w.visited[item.name] = true

		for target, conn := range w.m.Neighbors(item.name) {
			_ = conn // connection capacity is irrelevant to the horizon estimate
			if w.visited[target] {
				continue
			}
			targetHub, ok := w.m.Hub(target)
			if !ok || targetHub.Zone == simmap.Blocked {
				continue
			}
			w.queue = append(w.queue, queueItem{
				name: target,
				cost: item.cost + targetHub.Zone.TravelDuration(),
			})
		}
	}

	return -1, nil
}
