package storyview_test

import (
	"testing"

	"github.com/fwojciec/storyview"
	"github.com/stretchr/testify/assert"
)

func TestCursor_Advance(t *testing.T) {
	t.Parallel()

	t.Run("starts at zero", func(t *testing.T) {
		t.Parallel()

		c := storyview.NewCursor(3)

		assert.Equal(t, 0, c.Index())
	})

	t.Run("previous at start is a no-op", func(t *testing.T) {
		t.Parallel()

		c := storyview.NewCursor(3)

		assert.False(t, c.Advance(storyview.Previous))
		assert.Equal(t, 0, c.Index())
	})

	t.Run("next at end is a no-op", func(t *testing.T) {
		t.Parallel()

		c := storyview.NewCursor(3)
		c.Advance(storyview.Next)
		c.Advance(storyview.Next)

		assert.False(t, c.Advance(storyview.Next))
		assert.Equal(t, 2, c.Index())
	})

	t.Run("single story never moves", func(t *testing.T) {
		t.Parallel()

		c := storyview.NewCursor(1)

		assert.False(t, c.Advance(storyview.Next))
		assert.False(t, c.Advance(storyview.Previous))
		assert.Equal(t, 0, c.Index())
	})

	t.Run("empty deck never moves", func(t *testing.T) {
		t.Parallel()

		c := storyview.NewCursor(0)

		assert.False(t, c.Advance(storyview.Next))
		assert.Equal(t, 0, c.Index())
	})
}

func TestClassifySwipe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     storyview.Coord
		end       storyview.Coord
		wantDir   storyview.Direction
		wantMatch bool
	}{
		{"upward swipe is next", storyview.At(500), storyview.At(420), storyview.Next, true},
		{"downward swipe is previous", storyview.At(420), storyview.At(500), storyview.Previous, true},
		{"inside dead zone", storyview.At(100), storyview.At(130), 0, false},
		{"exactly threshold upward", storyview.At(150), storyview.At(100), 0, false},
		{"exactly threshold downward", storyview.At(100), storyview.At(150), 0, false},
		{"just past threshold upward", storyview.At(150.5), storyview.At(100), storyview.Next, true},
		{"missing start", storyview.Coord{}, storyview.At(300), 0, false},
		{"missing end", storyview.At(300), storyview.Coord{}, 0, false},
		{"zero start is present", storyview.At(0), storyview.At(80), storyview.Previous, true},
		{"zero end is present", storyview.At(80), storyview.At(0), storyview.Next, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, ok := storyview.ClassifySwipe(tt.start, tt.end, storyview.DefaultSwipeThreshold)

			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantDir, dir)
			}
		})
	}
}

func TestGesture(t *testing.T) {
	t.Parallel()

	t.Run("end returns the sample and clears it", func(t *testing.T) {
		t.Parallel()

		var g storyview.Gesture
		g.Begin(10)
		g.Move(70)

		start, last := g.End()
		assert.Equal(t, storyview.At(10), start)
		assert.Equal(t, storyview.At(70), last)

		start, last = g.End()
		assert.False(t, start.Valid)
		assert.False(t, last.Valid)
	})

	t.Run("begin discards the previous last position", func(t *testing.T) {
		t.Parallel()

		var g storyview.Gesture
		g.Begin(10)
		g.Move(70)
		g.Begin(20)

		start, last := g.End()
		assert.Equal(t, storyview.At(20), start)
		assert.False(t, last.Valid, "a tap without movement has no last position")
	})
}

func TestDirection_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "next", storyview.Next.String())
	assert.Equal(t, "previous", storyview.Previous.String())
	assert.Equal(t, "unknown", storyview.Direction(42).String())
}
