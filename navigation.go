package storyview

// DefaultSwipeThreshold is the minimum gesture distance that registers as
// intentional navigation. Shorter gestures are taps or jitter.
const DefaultSwipeThreshold = 50.0

// Key values understood by Slideshow.HandleKey.
const (
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// Direction is a navigation step through a deck.
type Direction int

// Navigation directions.
const (
	Next Direction = iota
	Previous
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	default:
		return "unknown"
	}
}

// Cursor is an index into a deck clamped to [0, length-1].
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor at 0 for a deck of the given length.
func NewCursor(length int) Cursor {
	return Cursor{length: length}
}

// Index returns the current position.
func (c Cursor) Index() int {
	return c.index
}

// Advance moves the cursor one step in direction d. At either end of the
// deck it does nothing. Reports whether the cursor moved.
func (c *Cursor) Advance(d Direction) bool {
	switch d {
	case Next:
		if c.index < c.length-1 {
			c.index++
			return true
		}
	case Previous:
		if c.index > 0 {
			c.index--
			return true
		}
	}
	return false
}

// Coord is an optional gesture coordinate. The zero Coord is absent, so a
// recorded position of 0 stays distinguishable from no position at all.
type Coord struct {
	Value float64
	Valid bool
}

// At returns a present Coord with value v.
func At(v float64) Coord {
	return Coord{Value: v, Valid: true}
}

// ClassifySwipe maps a gesture from start to end onto a direction.
// Moving up by more than threshold (start > end) is Next, moving down by
// more than threshold is Previous. ok is false for absent coordinates and
// for gestures inside the dead zone, including exactly ±threshold.
func ClassifySwipe(start, end Coord, threshold float64) (d Direction, ok bool) {
	if !start.Valid || !end.Valid {
		return 0, false
	}
	delta := start.Value - end.Value
	switch {
	case delta > threshold:
		return Next, true
	case delta < -threshold:
		return Previous, true
	default:
		return 0, false
	}
}

// Gesture holds the sample of a single touch interaction.
type Gesture struct {
	start Coord
	last  Coord
}

// Begin starts a new interaction at y, discarding any previous sample.
func (g *Gesture) Begin(y float64) {
	g.last = Coord{}
	g.start = At(y)
}

// Move records the latest position of the interaction.
func (g *Gesture) Move(y float64) {
	g.last = At(y)
}

// End returns the sample and clears it.
func (g *Gesture) End() (start, last Coord) {
	start, last = g.start, g.last
	*g = Gesture{}
	return start, last
}
