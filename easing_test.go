package storyview_test

import (
	"testing"

	"github.com/fwojciec/storyview"
	"github.com/stretchr/testify/assert"
)

func TestCubicBezier_At(t *testing.T) {
	t.Parallel()

	t.Run("endpoints and clamping", func(t *testing.T) {
		t.Parallel()

		ease := storyview.EaseStandard
		assert.Equal(t, 0.0, ease.At(0))
		assert.Equal(t, 1.0, ease.At(1))
		assert.Equal(t, 0.0, ease.At(-0.5))
		assert.Equal(t, 1.0, ease.At(1.5))
	})

	t.Run("standard curve is monotonic and front-loaded", func(t *testing.T) {
		t.Parallel()

		ease := storyview.EaseStandard
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := ease.At(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev)
			prev = v
		}
		assert.Greater(t, ease.At(0.5), 0.5)
	})

	t.Run("linear control points give identity", func(t *testing.T) {
		t.Parallel()

		linear := storyview.CubicBezier{X1: 1.0 / 3, Y1: 1.0 / 3, X2: 2.0 / 3, Y2: 2.0 / 3}
		for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
			assert.InDelta(t, x, linear.At(x), 1e-4)
		}
	})
}
