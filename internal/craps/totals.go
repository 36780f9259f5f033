package craps

import "fmt"

// Totals is a set of roll totals in [2,12], stored as a bitmask so that the
// win/lose/push partitions of a bet compare and copy as plain integers.
type Totals uint16

// NewTotals builds a set from the given totals.
func NewTotals(ns ...int) Totals {
	var t Totals
	return t.With(ns...)
}

// Contains reports whether n is in the set.
func (t Totals) Contains(n int) bool {
	if n < 2 || n > 12 {
		return false
	}
	return t&(1<<(n-2)) != 0
}

// With returns the set extended by the given totals.
func (t Totals) With(ns ...int) Totals {
	for _, n := range ns {
		if n < 2 || n > 12 {
			panic(fmt.Sprintf("roll total %d out of range [2,12]", n))
		}
		t |= 1 << (n - 2)
	}
	return t
}

// Without returns the set with the given totals removed.
func (t Totals) Without(ns ...int) Totals {
	for _, n := range ns {
		if n >= 2 && n <= 12 {
			t &^= 1 << (n - 2)
		}
	}
	return t
}

// Len returns the number of totals in the set.
func (t Totals) Len() int {
	count := 0
	for n := 2; n <= 12; n++ {
		if t.Contains(n) {
			count++
		}
	}
	return count
}

// Numbers returns the totals in the set in ascending order.
func (t Totals) Numbers() []int {
	ns := make([]int, 0, t.Len())
	for n := 2; n <= 12; n++ {
		if t.Contains(n) {
			ns = append(ns, n)
		}
	}
	return ns
}
