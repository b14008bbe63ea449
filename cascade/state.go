package cascade

import "github.com/zhuyadong/libcss/bytecode"

// Origin identifies which kind of stylesheet a declaration came from.
type Origin uint8

const (
	OriginUserAgent Origin = iota
	OriginUser
	OriginAuthor
)

// Allocator bounds the memory used by variable-length computed values
// (content, counter lists, family names). Reserve returns an error when
// the budget is exhausted; Release returns capacity on teardown of a
// partial list.
type Allocator interface {
	Reserve(bytes int) error
	Release(bytes int)
}

// unbounded is the default allocator.
type unbounded struct{}

func (unbounded) Reserve(int) error { return nil }
func (unbounded) Release(int)       {}

// LimitAllocator refuses reservations past a fixed byte budget.
type LimitAllocator struct {
	Remaining int
}

func (a *LimitAllocator) Reserve(bytes int) error {
	if bytes > a.Remaining {
		return ErrNomem
	}
	a.Remaining -= bytes
	return nil
}

func (a *LimitAllocator) Release(bytes int) {
	a.Remaining += bytes
}

// propState records the best declaration seen so far for one property.
type propState struct {
	set       bool
	origin    Origin
	important bool
}

// State is the per-pass cascade context: the target computed style, the
// allocator for variable-sized values, and the per-property origin and
// importance of the current winner. The selector matcher sets Origin
// before replaying each sheet's declarations; within one origin,
// declarations arrive in ascending specificity and source order.
type State struct {
	Result *ComputedStyle
	Alloc  Allocator
	Origin Origin

	props [bytecode.NumProps]propState
}

// NewState creates a cascade state targeting result.
func NewState(result *ComputedStyle) *State {
	return &State{Result: result, Alloc: unbounded{}}
}

// rank orders origin and importance per the CSS cascade: important
// declarations invert the origin order.
func rank(origin Origin, important bool) int {
	if important {
		switch origin {
		case OriginAuthor:
			return 3
		case OriginUser:
			return 4
		case OriginUserAgent:
			return 5
		}
	}
	switch origin {
	case OriginUserAgent:
		return 0
	case OriginUser:
		return 1
	}
	return 2
}

// outranksExisting decides whether a declaration for op beats the
// recorded winner and records it when it does. Equal rank wins: the
// caller replays declarations in ascending specificity and source
// order.
func outranksExisting(op bytecode.PropertyID, important bool, state *State, inherit bool) bool {
	ps := &state.props[op]
	if ps.set && rank(state.Origin, important) < rank(ps.origin, ps.important) {
		return false
	}
	ps.set = true
	ps.origin = state.Origin
	ps.important = important
	return true
}
