package bubbletea

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Progress marker widths in cells.
const (
	markerWidth       = 2
	activeMarkerWidth = 4
)

// Spring tuned to settle within storyview.IndicatorDuration.
const (
	indicatorFrequency = 15.0
	indicatorDamping   = 1.0
	indicatorEpsilon   = 0.01
)

// indicator animates progress marker widths toward their targets.
type indicator struct {
	spring     harmonica.Spring
	widths     []float64
	velocities []float64
}

// newIndicator returns an indicator at rest with marker active highlighted.
func newIndicator(n, active int) *indicator {
	ind := &indicator{
		spring:     harmonica.NewSpring(harmonica.FPS(frameRate), indicatorFrequency, indicatorDamping),
		widths:     make([]float64, n),
		velocities: make([]float64, n),
	}
	for i := range ind.widths {
		ind.widths[i] = markerTarget(i, active)
	}
	return ind
}

// step advances every marker by one frame and reports whether all markers
// have come to rest.
func (ind *indicator) step(active int) bool {
	settled := true
	for i := range ind.widths {
		target := markerTarget(i, active)
		ind.widths[i], ind.velocities[i] = ind.spring.Update(ind.widths[i], ind.velocities[i], target)
		if math.Abs(ind.widths[i]-target) < indicatorEpsilon && math.Abs(ind.velocities[i]) < indicatorEpsilon {
			ind.widths[i], ind.velocities[i] = target, 0
			continue
		}
		settled = false
	}
	return settled
}

// cells returns the current marker widths rounded to whole cells.
func (ind *indicator) cells() []int {
	cells := make([]int, len(ind.widths))
	for i, w := range ind.widths {
		cells[i] = int(math.Round(w))
		if cells[i] < 1 {
			cells[i] = 1
		}
	}
	return cells
}

func markerTarget(i, active int) float64 {
	if i == active {
		return activeMarkerWidth
	}
	return markerWidth
}
