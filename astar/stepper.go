package astar

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Snapshot exposes the state of a Stepper after one Step.
type Snapshot struct {
	Step    int                        // 1-based index of the step that produced this snapshot
	Current *SearchNode                // node selected by this step; nil if none was selected
	Open    mapset.Set[tilegrid.Coord] // positions in the open set
	Closed  mapset.Set[tilegrid.Coord] // positions in the closed set
	Done    bool
	Found   bool
	Path    []*SearchNode // goal → start, set once Found
}

// Stepper runs the same search as FindPath one selection per Step, for callers
// that animate or inspect the frontier.
type Stepper struct {
	r     *runner
	steps int
}

// NewStepper validates the inputs like FindPath and prepares the start node.
func NewStepper(g *tilegrid.Grid, start, goal tilegrid.Coord, opts ...Option) (*Stepper, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	return &Stepper{r: r}, nil
}

// Step advances the search by one selection. Once done, it keeps returning the
// final state without advancing.
func (s *Stepper) Step() Snapshot {
	var current *SearchNode
	if !s.r.done {
		s.steps++
		current = s.r.step()
	}
	res := s.r.result()

	return Snapshot{
		Step:    s.steps,
		Current: current,
		Open:    s.openSet(),
		Closed:  s.closedSet(),
		Done:    s.r.done,
		Found:   res.Found,
		Path:    res.Path,
	}
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.r.done }

// Result returns the outcome so far; Found stays false until the goal is selected.
func (s *Stepper) Result() Result { return s.r.result() }

// Run steps until done and returns the result.
func (s *Stepper) Run() Result {
	for !s.r.done {
		s.Step()
	}

	return s.r.result()
}

func (s *Stepper) openSet() mapset.Set[tilegrid.Coord] {
	set := mapset.New[tilegrid.Coord]()
	s.r.open.Each(func(n *SearchNode) {
		set.Put(n.Coord())
	})

	return set
}

func (s *Stepper) closedSet() mapset.Set[tilegrid.Coord] {
	set := mapset.New[tilegrid.Coord]()
	for pos := range s.r.closed {
		set.Put(pos)
	}

	return set
}
