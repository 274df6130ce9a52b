package astar

import (
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Result holds the outcome of a search.
//
//   - Path:     nodes from the goal (index 0) back to the start (last index);
//     nil when Found is false.
//   - Found:    false means no path exists (or the expansion cap was reached).
//   - Expanded: number of nodes moved to the closed set.
type Result struct {
	Path     []*SearchNode
	Found    bool
	Expanded int
}

// Hops returns the number of moves on the path, len(Path)-1, or -1 without a path.
func (r Result) Hops() int {
	if !r.Found {
		return -1
	}

	return len(r.Path) - 1
}

// TotalCost returns the accumulated cost at the goal, or 0 without a path.
func (r Result) TotalCost() float64 {
	if !r.Found || len(r.Path) == 0 {
		return 0
	}

	return r.Path[0].AccumulatedCost
}

// Coords returns the path positions in path order (goal first).
func (r Result) Coords() []tilegrid.Coord {
	out := make([]tilegrid.Coord, len(r.Path))
	for i, n := range r.Path {
		out[i] = n.Coord()
	}

	return out
}

// StartToGoal returns a reversed copy of Path.
func (r Result) StartToGoal() []*SearchNode {
	out := make([]*SearchNode, len(r.Path))
	for i, n := range r.Path {
		out[len(r.Path)-1-i] = n
	}

	return out
}

// FindPath searches g for a path from start to goal.
//
// Returns:
//
//   - Result with Found=true and the path ordered goal → start, or
//   - Result with Found=false and a nil error if the goal is unreachable, or
//   - an error: ErrNilGrid, ErrOptionViolation, or tilegrid.ErrOutOfBounds
//     (wrapped) when start or goal lies outside the grid.
//
// Options customization:
//
//   - WithWeight(w):         Priority = AccumulatedCost·w + Heuristic.
//   - WithSupersede(mode):   SupersedeByHeuristic (default) or SupersedeByPriority.
//   - WithFrontier(kind):    FrontierHeap (default) or FrontierLinear.
//   - WithHeuristic(fn):     replace the Euclidean distance.
//   - WithMaxExpansions(n):  give up after n expansions.
//   - WithOnExpand / WithOnEnqueue: observation hooks.
//
// Complexity:
//
//   - Time:  O(N log N) with the heap frontier.
//   - Space: O(N), N = nodes created.
func FindPath(g *tilegrid.Grid, start, goal tilegrid.Coord, opts ...Option) (Result, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return Result{}, err
	}
	for !r.done {
		r.step()
	}

	return r.result(), nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       *tilegrid.Grid
	goal    tilegrid.Coord
	options Options

	open   frontier                       // selection structure of the open set
	openAt map[tilegrid.Coord]*SearchNode // open node per position
	closed map[tilegrid.Coord]*SearchNode // closed node per position

	seq      uint64
	expanded int
	done     bool
	reached  *SearchNode // goal node once found
}

// newRunner validates the inputs and seeds the open set with the start node.
func newRunner(g *tilegrid.Grid, start, goal tilegrid.Coord, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	startTile, err := g.Tile(start.X, start.Y)
	if err != nil {
		return nil, err
	}
	if _, err = g.Tile(goal.X, goal.Y); err != nil {
		return nil, err
	}

	r := &runner{
		g:       g,
		goal:    goal,
		options: cfg,
		open:    newFrontier(cfg.Frontier),
		openAt:  make(map[tilegrid.Coord]*SearchNode),
		closed:  make(map[tilegrid.Coord]*SearchNode),
	}
	first := newNode(startTile, nil, cfg.Weight)
	first.Heuristic = cfg.Heuristic(start, goal)
	r.push(first)

	return r, nil
}

// step performs one selection and, unless it hits the goal, one expansion.
// It returns the selected node, or nil when the search ended without selecting.
func (r *runner) step() *SearchNode {
	if r.done {
		return nil
	}
	if r.open.Len() == 0 {
		r.done = true
		return nil
	}

	// 1) Select the cheapest open node; ties go to the earliest inserted.
	current := r.open.Pop()
	delete(r.openAt, current.Coord())

	// 2) Goal test happens on selection, before any expansion budget applies.
	if current.At(r.goal) {
		r.done = true
		r.reached = current
		return current
	}
	if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
		r.done = true
		return current
	}

	// 3) Close and expand.
	r.closed[current.Coord()] = current
	r.expanded++
	r.options.OnExpand(current)
	r.expand(current)

	return current
}

// expand offers every unblocked neighbor of current as a candidate.
func (r *runner) expand(current *SearchNode) {
	for _, t := range r.g.Neighbors(tilegrid.Tile{X: current.X, Y: current.Y}) {
		cand := newNode(t, current, r.options.Weight)
		pos := cand.Coord()
		cand.Heuristic = r.options.Heuristic(pos, r.goal)

		existing, inOpen := r.openAt[pos]
		if inOpen && !r.supersedes(cand, existing) {
			continue
		}
		closedNode, inClosed := r.closed[pos]
		if inClosed && !r.supersedes(cand, closedNode) {
			continue
		}

		if inOpen {
			r.open.Remove(existing)
			delete(r.openAt, pos)
		}
		delete(r.closed, pos)
		r.push(cand)
	}
}

// supersedes reports whether cand strictly improves on the recorded node.
func (r *runner) supersedes(cand, recorded *SearchNode) bool {
	if r.options.Supersede == SupersedeByPriority {
		return cand.Priority() < recorded.Priority()
	}

	return cand.Heuristic < recorded.Heuristic
}

func (r *runner) push(n *SearchNode) {
	n.seq = r.seq
	r.seq++
	r.open.Push(n)
	r.openAt[n.Coord()] = n
	r.options.OnEnqueue(n)
}

// result packages the current outcome.
func (r *runner) result() Result {
	res := Result{Expanded: r.expanded}
	if r.reached == nil {
		return res
	}
	res.Found = true
	for n := r.reached; n != nil; n = n.Predecessor {
		res.Path = append(res.Path, n)
	}

	return res
}
