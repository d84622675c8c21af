package fleet

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/aerolane/fleetroute/internal/pathfind"
	"github.com/aerolane/fleetroute/internal/reach"
	"github.com/aerolane/fleetroute/internal/simmap"
	"github.com/aerolane/fleetroute/internal/timegraph"
	"github.com/aerolane/fleetroute/internal/tracker"
)

// Report is the outcome of scheduling one fleet: the turn-by-turn
// movement lines, plus enough bookkeeping for a caller to tell a
// fully successful run from a partial one.
type Report struct {
	// RunID echoes the scheduled Map's RunID, for log correlation.
	RunID string

	// Lines is emit_turns' output: one string per non-empty turn,
	// space-joined tokens, in chronological order.
	Lines []string

	// TotalDrones is the fleet size the Map was built for.
	TotalDrones int

	// Delivered is the count of drones whose path reached END.
	Delivered int

	// Failed lists, in ascending order, the ids of drones for which
	// no path could be found under the capacity state at their turn.
	Failed []int

	// MaxTurns is the turn horizon the time-expanded graph was built
	// with.
	MaxTurns int
}

// Scheduler runs the C6 fleet-scheduling loop. The zero value is
// usable; Logger defaults to zap.NewNop() if left nil.
type Scheduler struct {
	Logger *zap.Logger
}

// NewScheduler returns a Scheduler that logs through log. A nil log
// is replaced with a no-op logger.
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}

	return &Scheduler{Logger: log}
}

// Run builds the time-expanded graph for m, then schedules one path
// per drone in ascending id order, reserving capacity greedily as it
// goes. The returned error is nil unless every drone failed to
// schedule or a structural precondition was violated; individual
// drone failures are aggregated into it with multierr but do not by
// themselves make err non-nil when at least one drone was delivered.
func (s *Scheduler) Run(ctx context.Context, m *simmap.Map) (*Report, error) {
	log := s.logger()

	if m == nil {
		return nil, ErrNilMap
	}

	maxTurns, err := reach.EstimateMaxTurns(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("fleet: estimating turn horizon: %w", err)
	}
	if maxTurns == reach.Unreachable {
		return nil, ErrUnreachableEnd
	}

	g, err := timegraph.Build(m, maxTurns)
	if err != nil {
		return nil, fmt.Errorf("fleet: building time-expanded graph: %w", err)
	}

	start, ok := m.StartHub()
	if !ok {
		return nil, ErrUnreachableEnd
	}

	trk := tracker.New(g)
	paths := make(map[int]*pathfind.Path, m.NBDrones())
	var failed []int
	var errs error

	for id := 1; id <= m.NBDrones(); id++ {
		path, ok, err := pathfind.Solve(g, trk, start.Name)
		if err != nil {
			return nil, fmt.Errorf("fleet: solving drone %d: %w", id, err)
		}
		if !ok {
			log.Warn("no path found for drone", zap.Int("drone_id", id))
			failed = append(failed, id)
			errs = multierr.Append(errs, fmt.Errorf("%w: %d", ErrDroneUnscheduled, id))
			continue
		}

		reserve(trk, g, path)
		paths[id] = path
	}

	lines := emitTurns(g, paths, m.NBDrones())

	report := &Report{
		RunID:       m.RunID.String(),
		Lines:       lines,
		TotalDrones: m.NBDrones(),
		Delivered:   len(paths),
		Failed:      failed,
		MaxTurns:    maxTurns,
	}

	if report.Delivered == 0 && m.NBDrones() > 0 {
		return report, errs
	}

	return report, nil
}

func (s *Scheduler) logger() *zap.Logger {
	if s == nil || s.Logger == nil {
		return zap.NewNop()
	}

	return s.Logger
}

// reserve commits path's capacity usage to trk: every edge for the
// turns it spans, and every node except the START node at t=0 (which
// is exempt from capacity accounting entirely).
func reserve(trk *tracker.Tracker, g *timegraph.Graph, path *pathfind.Path) {
	for _, eid := range path.Edges {
		trk.ReserveEdge(eid)
	}
	for i, n := range path.Nodes {
		if i == 0 && g.Turn(n) == 0 && g.Hub(n).Category == simmap.Start {
			continue
		}
		trk.ReserveNode(n)
	}
}

// emitTurns builds the per-turn output lines from the resolved paths.
func emitTurns(g *timegraph.Graph, paths map[int]*pathfind.Path, nbDrones int) []string {
	ids := make([]int, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	lastTurn := 0
	for _, id := range ids {
		path := paths[id]
		if t := g.Turn(path.Nodes[len(path.Nodes)-1]); t > lastTurn {
			lastTurn = t
		}
	}

	delivered := make(map[int]bool, len(ids))
	var lines []string

	for t := 0; t < lastTurn; t++ {
		var tokens []string

		for _, id := range ids {
			if delivered[id] {
				continue
			}

			path := paths[id]
			if tok, done := emitForDrone(g, id, path, t); tok != "" {
				tokens = append(tokens, tok)
				if done {
					delivered[id] = true
				}
			}
		}

		if len(tokens) > 0 {
			lines = append(lines, strings.Join(tokens, " "))
		}
	}

	return lines
}

// emitForDrone returns the movement token for one drone at turn t (or
// "" if the drone has nothing to emit this turn), and whether this
// turn's movement delivers the drone to END.
func emitForDrone(g *timegraph.Graph, id int, path *pathfind.Path, t int) (string, bool) {
	for i, n := range path.Nodes {
		if g.Turn(n) != t {
			continue
		}
		if i == len(path.Nodes)-1 {
			return "", false
		}

		cur := g.Hub(n)
		next := g.Hub(path.Nodes[i+1])

		if next.Name == cur.Name {
			return "", false // wait edge: nothing to emit
		}
		if next.Zone == simmap.Restricted {
			return fmt.Sprintf("D%d-%s-%s", id, cur.Name, next.Name), next.Category == simmap.End
		}

		return fmt.Sprintf("D%d-%s", id, next.Name), next.Category == simmap.End
	}

	// No path node lands exactly at t: check whether t falls strictly
	// inside a 2-turn edge toward a RESTRICTED hub, which still emits
	// the restricted-connection form for the in-flight turn.
	for i := 0; i+1 < len(path.Nodes); i++ {
		from, to := path.Nodes[i], path.Nodes[i+1]
		fromT, toT := g.Turn(from), g.Turn(to)
		if toT-fromT == 2 && fromT < t && t < toT {
			target := g.Hub(to)
			if target.Zone == simmap.Restricted {
				return fmt.Sprintf("D%d-%s-%s", id, g.Hub(from).Name, target.Name), false
			}
		}
	}

	return "", false
}
