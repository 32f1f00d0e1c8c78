package storyview_test

import (
	"testing"
	"time"

	"github.com/fwojciec/storyview"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC)

func TestTransition_Enter(t *testing.T) {
	t.Parallel()

	t.Run("starts invisible and scaled down", func(t *testing.T) {
		t.Parallel()

		f := storyview.NewTransition(0, t0).Frame(t0)

		assert.Equal(t, storyview.PhaseEnter, f.Phase)
		assert.Equal(t, 0, f.Index)
		assert.InDelta(t, 0, f.Opacity, 1e-9)
		assert.InDelta(t, 0.8, f.Scale, 1e-9)
		assert.InDelta(t, storyview.ContentRise, f.ContentOffset, 1e-9)
		assert.InDelta(t, storyview.TextRise, f.TitleOffset, 1e-9)
		assert.InDelta(t, 0, f.TitleOpacity, 1e-9)
	})

	t.Run("text is revealed title before subtitle", func(t *testing.T) {
		t.Parallel()

		f := storyview.NewTransition(0, t0).Frame(t0.Add(650 * time.Millisecond))

		assert.Greater(t, f.ContentOpacity, 0.0)
		assert.Greater(t, f.TitleOpacity, 0.0)
		assert.InDelta(t, 0, f.SubtitleOpacity, 1e-9)
		assert.Greater(t, f.ContentOpacity, f.TitleOpacity)
	})

	t.Run("settles after the last reveal", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(2, t0)
		f := tr.Frame(t0.Add(storyview.EnterDuration))

		assert.True(t, tr.Settled(t0.Add(storyview.EnterDuration)))
		assert.False(t, tr.Settled(t0.Add(storyview.TransitionDuration)))
		want := storyview.Frame{
			Index:           2,
			Phase:           storyview.PhaseSettled,
			Opacity:         1,
			Scale:           1,
			ContentOpacity:  1,
			TitleOpacity:    1,
			SubtitleOpacity: 1,
		}
		if diff := cmp.Diff(want, f, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("settled frame mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("time before start is clamped", func(t *testing.T) {
		t.Parallel()

		f := storyview.NewTransition(0, t0).Frame(t0.Add(-time.Second))

		assert.InDelta(t, 0, f.Opacity, 1e-9)
	})
}

func TestTransition_Retarget(t *testing.T) {
	t.Parallel()

	settled := t0.Add(2 * time.Second)

	t.Run("outgoing story exits before incoming enters", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(0, t0)
		tr.Retarget(1, settled)

		f := tr.Frame(settled)
		assert.Equal(t, storyview.PhaseExit, f.Phase)
		assert.Equal(t, 0, f.Index)
		assert.InDelta(t, 1, f.Opacity, 1e-9)

		f = tr.Frame(settled.Add(400 * time.Millisecond))
		assert.Equal(t, 0, f.Index)
		assert.Greater(t, f.Scale, 1.0)
		assert.Less(t, f.Scale, 1.2)
		assert.Less(t, f.Opacity, 1.0)

		f = tr.Frame(settled.Add(storyview.TransitionDuration))
		assert.Equal(t, storyview.PhaseEnter, f.Phase)
		assert.Equal(t, 1, f.Index)
		assert.InDelta(t, 0, f.Opacity, 1e-9)

		assert.True(t, tr.Settled(settled.Add(storyview.TransitionDuration+storyview.EnterDuration)))
	})

	t.Run("retarget during exit only changes the target", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(0, t0)
		tr.Retarget(1, settled)
		tr.Retarget(2, settled.Add(100*time.Millisecond))

		assert.Equal(t, 2, tr.Target())
		assert.Equal(t, 0, tr.Frame(settled.Add(700*time.Millisecond)).Index)
		assert.Equal(t, 2, tr.Frame(settled.Add(storyview.TransitionDuration)).Index)
	})

	t.Run("retarget during enter exits the entering story", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(0, t0)
		tr.Retarget(1, settled)
		now := settled.Add(storyview.TransitionDuration + 100*time.Millisecond)
		tr.Retarget(2, now)

		f := tr.Frame(now)
		assert.Equal(t, storyview.PhaseExit, f.Phase)
		assert.Equal(t, 1, f.Index)
	})

	t.Run("exit continues from a partly entered card", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(0, t0)
		now := t0.Add(400 * time.Millisecond)
		entering := tr.Frame(now)
		require.Less(t, entering.Opacity, 1.0)
		require.Less(t, entering.TitleOpacity, 1.0)

		tr.Retarget(1, now)

		want := entering
		want.Phase = storyview.PhaseExit
		if diff := cmp.Diff(want, tr.Frame(now), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("exit should start where the enter stopped (-want +got):\n%s", diff)
		}

		later := tr.Frame(now.Add(400 * time.Millisecond))
		assert.Less(t, later.Opacity, entering.Opacity)
		assert.InDelta(t, entering.TitleOpacity, later.TitleOpacity, 1e-9, "text should not jump while exiting")
		assert.InDelta(t, entering.ContentOffset, later.ContentOffset, 1e-9)
	})

	t.Run("retarget to the shown story is a no-op", func(t *testing.T) {
		t.Parallel()

		tr := storyview.NewTransition(1, t0)
		tr.Retarget(1, settled)

		assert.True(t, tr.Frame(settled).Settled())
	})
}

func TestHintOpacity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0, storyview.HintOpacity(0), 1e-9)
	assert.InDelta(t, 0, storyview.HintOpacity(storyview.HintDelay), 1e-9)
	mid := storyview.HintOpacity(storyview.HintDelay + storyview.HintFadeDuration/2)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)
	assert.InDelta(t, 1, storyview.HintOpacity(storyview.HintDelay+storyview.HintFadeDuration), 1e-9)
}
