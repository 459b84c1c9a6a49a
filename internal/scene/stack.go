package scene

import (
	"errors"

	"github.com/Faultbox/carscene/pkg/math"
)

// ErrStackUnderflow is returned by Restore when there is no saved transform.
var ErrStackUnderflow = errors.New("transform stack underflow")

// Stack is a save/restore stack of transforms around a mutable current
// transform. Saved entries are copies, so a balanced Save/Restore pair
// returns Current to exactly its previous value.
type Stack struct {
	current math.Mat4
	saved   []math.Mat4

	saves    int
	restores int
}

// NewStack returns a stack whose current transform is base.
func NewStack(base math.Mat4) *Stack {
	return &Stack{
		current: base,
		saved:   make([]math.Mat4, 0, 16),
	}
}

// Current returns the current transform.
func (s *Stack) Current() math.Mat4 {
	return s.current
}

// Compose right-multiplies the current transform by local.
func (s *Stack) Compose(local math.Mat4) {
	s.current = s.current.Mul(local)
}

// Save pushes a copy of the current transform.
func (s *Stack) Save() {
	s.saved = append(s.saved, s.current)
	s.saves++
}

// Restore pops the most recently saved transform and makes it current.
func (s *Stack) Restore() error {
	n := len(s.saved)
	if n == 0 {
		return ErrStackUnderflow
	}
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	s.restores++
	return nil
}

// Depth returns the number of saved transforms.
func (s *Stack) Depth() int {
	return len(s.saved)
}

// Counts returns how many saves and successful restores have happened.
func (s *Stack) Counts() (saves, restores int) {
	return s.saves, s.restores
}
