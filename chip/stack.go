package chip

import (
	"math"
)

const (
	STACK_SIZE = 512 // Stack depth, in cells.
)

// Stack is the stack memory of a chip. It holds no pointer of its own:
// every operation is addressed by the value of the `sp` register.
type Stack struct {
	Data [STACK_SIZE]float64
}

// stackIndex converts a stack pointer value to a cell index.
func stackIndex(sp float64) (index int, ok bool) {
	if math.IsNaN(sp) || math.IsInf(sp, 0) {
		return
	}

	sp = math.Floor(sp)
	if sp < 0 {
		index = -1
		return
	}
	if sp > STACK_SIZE {
		index = STACK_SIZE + 1
		return
	}

	index = int(sp)
	ok = true
	return
}

// Push stores value at sp, and returns the incremented stack pointer.
func (s *Stack) Push(sp float64, value float64) (next float64, err error) {
	index, ok := stackIndex(sp)
	if !ok && index < 0 {
		err = ErrStackUnderflow
		return
	}
	if !ok || index >= STACK_SIZE {
		err = ErrStackOverflow
		return
	}

	s.Data[index] = value
	next = float64(index + 1)
	return
}

// Peek reads the cell below sp.
func (s *Stack) Peek(sp float64) (value float64, err error) {
	index, ok := stackIndex(sp)
	if !ok && index > STACK_SIZE {
		err = ErrStackOverflow
		return
	}
	if !ok || index == 0 {
		err = ErrStackUnderflow
		return
	}

	value = s.Data[index-1]
	return
}

// Pop reads the cell below sp, and returns the decremented stack pointer.
func (s *Stack) Pop(sp float64) (value float64, next float64, err error) {
	value, err = s.Peek(sp)
	if err != nil {
		return
	}

	next = math.Floor(sp) - 1
	return
}

// Reset clears the stack memory.
func (s *Stack) Reset() {
	clear(s.Data[:])
}
