// Package dice implements the pair of dice rolled at a craps table.
//
// Dice are the only source of randomness in a simulation. For deterministic
// testing inject a seeded *rand.Rand, or feed exact face values through
// FixedRoll.
package dice

import (
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/lox/crapsforbots/internal/randutil"
)

// Dice represents a pair of six-sided dice and a running roll count.
type Dice struct {
	rng   *rand.Rand
	faces [2]int
	rolls int
}

// New creates dice driven by the given RNG. A nil RNG gets a time-based seed.
func New(rng *rand.Rand) *Dice {
	if rng == nil {
		rng = randutil.New(time.Now().UnixNano())
	}
	return &Dice{rng: rng}
}

// Roll throws both dice, recording the result.
func (d *Dice) Roll() {
	d.faces[0] = d.rng.IntN(6) + 1
	d.faces[1] = d.rng.IntN(6) + 1
	d.rolls++
}

// FixedRoll records a caller-supplied result instead of a random throw.
// Face values outside [1,6] are rejected before they can reach any bet logic.
func (d *Dice) FixedRoll(f1, f2 int) error {
	if f1 < 1 || f1 > 6 || f2 < 1 || f2 > 6 {
		return fmt.Errorf("invalid dice faces (%d, %d): must be in [1,6]", f1, f2)
	}
	d.faces[0] = f1
	d.faces[1] = f2
	d.rolls++
	return nil
}

// Total returns the sum of the two faces of the last roll.
func (d *Dice) Total() int {
	return d.faces[0] + d.faces[1]
}

// Faces returns the ordered pair of face values of the last roll.
func (d *Dice) Faces() (int, int) {
	return d.faces[0], d.faces[1]
}

// Hard reports whether the last roll was a matched pair.
func (d *Dice) Hard() bool {
	return d.rolls > 0 && d.faces[0] == d.faces[1]
}

// Rolls returns the number of rolls taken so far.
func (d *Dice) Rolls() int {
	return d.rolls
}
