package craps

// PointStatus is whether the table has an established point.
type PointStatus int

const (
	PointOff PointStatus = iota
	PointOn
)

func (s PointStatus) String() string {
	return [...]string{"Off", "On"}[s]
}

// pointNumbers are the totals that can establish a point.
var pointNumbers = NewTotals(4, 5, 6, 8, 9, 10)

// Point is the table-wide marker for the game phase. Number is meaningful
// only while Status is PointOn.
type Point struct {
	Status PointStatus
	Number int
}

// On reports whether a point is established.
func (p Point) On() bool {
	return p.Status == PointOn
}

// Update advances the point state machine for a completed roll total:
// Off goes On(total) for a point number, On(n) goes Off on a 7 or on the
// point number, and everything else is a self-loop.
func (p *Point) Update(total int) {
	switch {
	case p.Status == PointOff && pointNumbers.Contains(total):
		p.Status = PointOn
		p.Number = total
	case p.Status == PointOn && (total == 7 || total == p.Number):
		p.Status = PointOff
		p.Number = 0
	}
}
