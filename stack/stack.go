package stack

import (
	"errors"

	"github.com/npillmayer/polycalc/poly"
)

// initialCapacity is the floor the stack never shrinks below.
const initialCapacity = 4

// ErrUnderflow is returned by Pop, Top, and SecondFromTop when the
// stack does not hold enough elements to satisfy the call. Callers
// (the command dispatcher) translate this into "STACK UNDERFLOW".
var ErrUnderflow = errors.New("stack underflow")

// Stack is a LIFO container of poly.Poly values with amortized O(1)
// push/pop and O(1) peek of the top (and second-from-top, needed by
// binary-operator commands). It is not safe for concurrent use; the
// calculator is single-threaded by design.
type Stack struct {
	arr []poly.Poly
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{arr: make([]poly.Poly, 0, initialCapacity)}
}

// Len reports how many polynomials are currently on the stack.
func (s *Stack) Len() int {
	return len(s.arr)
}

// Push places p on top of the stack.
func (s *Stack) Push(p poly.Poly) {
	s.arr = append(s.arr, p)
	tracer().Debugf("stack push, depth now %d", len(s.arr))
}

// Pop removes and discards the top of the stack, shrinking the backing
// array once it drops below half capacity (never below
// initialCapacity). Returns ErrUnderflow, leaving the stack untouched,
// if it is empty.
func (s *Stack) Pop() error {
	if len(s.arr) == 0 {
		return ErrUnderflow
	}
	s.arr = s.arr[:len(s.arr)-1]
	s.maybeShrink()
	return nil
}

// PopValue removes and returns the top of the stack.
func (s *Stack) PopValue() (poly.Poly, error) {
	top, err := s.Top()
	if err != nil {
		return poly.Poly{}, err
	}
	_ = s.Pop()
	return top, nil
}

// Top returns the polynomial on top of the stack without removing it.
func (s *Stack) Top() (poly.Poly, error) {
	if len(s.arr) == 0 {
		return poly.Poly{}, ErrUnderflow
	}
	return s.arr[len(s.arr)-1], nil
}

// SecondFromTop returns the polynomial directly below the top, without
// removing anything, for commands that need to inspect two operands
// before deciding whether to mutate the stack at all.
func (s *Stack) SecondFromTop() (poly.Poly, error) {
	if len(s.arr) < 2 {
		return poly.Poly{}, ErrUnderflow
	}
	return s.arr[len(s.arr)-2], nil
}

// maybeShrink halves the backing array's capacity once usage drops to
// below half, floored at initialCapacity, mirroring DecreaseStack.
func (s *Stack) maybeShrink() {
	cap := cap(s.arr)
	if cap <= initialCapacity {
		return
	}
	if len(s.arr) >= cap/2 {
		return
	}
	newCap := cap / 2
	if newCap < initialCapacity {
		newCap = initialCapacity
	}
	shrunk := make([]poly.Poly, len(s.arr), newCap)
	copy(shrunk, s.arr)
	s.arr = shrunk
	tracer().Debugf("stack shrunk to capacity %d", newCap)
}
