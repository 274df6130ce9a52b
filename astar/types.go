package astar

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// DefaultWeight is the factor applied to AccumulatedCost in Priority.
const DefaultWeight = 3.0

// SupersedeMode decides when a candidate replaces a recorded node at the same position.
type SupersedeMode int

const (
	// SupersedeByHeuristic replaces only if the candidate heuristic is strictly lower.
	SupersedeByHeuristic SupersedeMode = iota
	// SupersedeByPriority replaces only if the candidate priority is strictly lower.
	SupersedeByPriority
)

// String returns "heuristic" or "priority".
func (m SupersedeMode) String() string {
	if m == SupersedeByPriority {
		return "priority"
	}

	return "heuristic"
}

// FrontierKind selects the open-set structure.
type FrontierKind int

const (
	// FrontierHeap uses a binary heap keyed on (priority, insertion sequence).
	FrontierHeap FrontierKind = iota
	// FrontierLinear scans an insertion-ordered list on every selection.
	FrontierLinear
)

// String returns "heap" or "linear".
func (k FrontierKind) String() string {
	if k == FrontierLinear {
		return "linear"
	}

	return "heap"
}

// HeuristicFunc estimates the remaining distance between two positions.
type HeuristicFunc func(from, to tilegrid.Coord) float64

// Euclidean is the straight-line distance between two positions in cell units.
func Euclidean(from, to tilegrid.Coord) float64 {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by FindPath.
type Option func(*Options)

// Options holds the parameters and callbacks of one search.
type Options struct {
	// Weight multiplies AccumulatedCost in Priority.
	Weight float64

	// Supersede selects the replacement rule for already recorded positions.
	Supersede SupersedeMode

	// Frontier selects the open-set structure.
	Frontier FrontierKind

	// Heuristic estimates the remaining distance to the goal.
	Heuristic HeuristicFunc

	// MaxExpansions, if > 0, ends the search without a path after that many expansions.
	MaxExpansions int

	// OnExpand is called when a node moves from the open to the closed set.
	OnExpand func(n *SearchNode)

	// OnEnqueue is called when a node is added to the open set, start included.
	OnEnqueue func(n *SearchNode)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Weight 3, SupersedeByHeuristic, FrontierHeap, Euclidean heuristic
//   - no expansion cap
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Weight:    DefaultWeight,
		Supersede: SupersedeByHeuristic,
		Frontier:  FrontierHeap,
		Heuristic: Euclidean,
		OnExpand:  func(*SearchNode) {},
		OnEnqueue: func(*SearchNode) {},
	}
}

// WithWeight sets the accumulated-cost weight. Negative or NaN values are rejected.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			o.err = fmt.Errorf("%w: weight must be finite and non-negative (%v)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithSupersede sets the replacement rule.
func WithSupersede(mode SupersedeMode) Option {
	return func(o *Options) {
		switch mode {
		case SupersedeByHeuristic, SupersedeByPriority:
			o.Supersede = mode
		default:
			o.err = fmt.Errorf("%w: unknown supersede mode %d", ErrOptionViolation, mode)
		}
	}
}

// WithFrontier sets the open-set structure.
func WithFrontier(kind FrontierKind) Option {
	return func(o *Options) {
		switch kind {
		case FrontierHeap, FrontierLinear:
			o.Frontier = kind
		default:
			o.err = fmt.Errorf("%w: unknown frontier kind %d", ErrOptionViolation, kind)
		}
	}
}

// WithHeuristic replaces the Euclidean heuristic. nil is ignored.
func WithHeuristic(fn HeuristicFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0: stop after n expansions
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(n *SearchNode)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback run whenever a node enters the open set.
func WithOnEnqueue(fn func(n *SearchNode)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
