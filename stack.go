package turtle

import "fmt"

// CursorState is a turtle position and heading.
type CursorState struct {
	Row, Col float64

	// Direction is the heading in radians, in [0, 2π).
	Direction float64
}

// stateStack is a bounded LIFO of cursor states.
type stateStack struct {
	items []CursorState
	limit int
}

func newStateStack(limit int) *stateStack {
	return &stateStack{limit: limit}
}

func (s *stateStack) push(st CursorState) error {
	if len(s.items) >= s.limit {
		return fmt.Errorf("%w: %d states", ErrStackOverflow, s.limit)
	}
	s.items = append(s.items, st)
	return nil
}

func (s *stateStack) pop() (CursorState, error) {
	n := len(s.items)
	if n == 0 {
		return CursorState{}, ErrStackUnderflow
	}
	st := s.items[n-1]
	s.items = s.items[:n-1]
	return st, nil
}

func (s *stateStack) clear() {
	s.items = s.items[:0]
}

func (s *stateStack) len() int {
	return len(s.items)
}
