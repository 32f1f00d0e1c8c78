package storyview

import "time"

// Animation timing. These are presentation parameters; navigation never
// waits on them.
const (
	TransitionDuration = 800 * time.Millisecond  // Card exit and card enter, each
	ContentDelay       = 300 * time.Millisecond  // Text block reveal, from start of enter
	TitleDelay         = 500 * time.Millisecond  // Title reveal, from start of enter
	SubtitleDelay      = 700 * time.Millisecond  // Subtitle reveal, from start of enter
	RevealDuration     = 400 * time.Millisecond  // Length of each text reveal
	HintDelay          = 1000 * time.Millisecond // Navigation hint fade-in, from mount
	HintFadeDuration   = 400 * time.Millisecond
	IndicatorDuration  = 300 * time.Millisecond // Progress marker resize
)

// Distances, in gesture units, that text slides up while being revealed.
const (
	ContentRise = 50.0
	TextRise    = 20.0
)

// EnterDuration is the time from the start of an enter phase until every
// element has reached its resting state.
const EnterDuration = SubtitleDelay + RevealDuration

// Phase is the stage of a card transition.
type Phase int

// Transition phases.
const (
	PhaseEnter Phase = iota
	PhaseExit
	PhaseSettled
)

// Frame is a snapshot of the visual state of the slideshow at one instant.
type Frame struct {
	Index int // Story being drawn
	Phase Phase

	Opacity float64 // Card opacity, 0..1
	Scale   float64 // Card scale, 1 at rest

	ContentOpacity  float64
	ContentOffset   float64 // Downward offset in gesture units
	TitleOpacity    float64
	TitleOffset     float64
	SubtitleOpacity float64
	SubtitleOffset  float64
}

// Settled reports whether every element of the frame is at rest.
func (f Frame) Settled() bool {
	return f.Phase == PhaseSettled
}

// Transition tracks the outgoing story and the transition in progress. The
// outgoing story finishes its exit before the incoming one enters.
type Transition struct {
	from    int
	to      int
	start   time.Time // Start of the exit, or of the enter when not exiting
	exiting bool
	leaving Frame // Outgoing story as it looked when the exit started
}

// NewTransition returns a transition that plays the enter animation of
// index starting at now.
func NewTransition(index int, now time.Time) Transition {
	return Transition{from: index, to: index, start: now}
}

// Target returns the index of the story the transition ends on.
func (t Transition) Target() int {
	return t.to
}

// Retarget changes the story the transition ends on. While the outgoing story
// is still exiting only the target changes; otherwise the story currently on
// screen starts exiting at now.
func (t *Transition) Retarget(to int, now time.Time) {
	if t.exiting && now.Sub(t.start) < TransitionDuration {
		t.to = to
		return
	}
	if to == t.to {
		return
	}
	t.leaving = t.Frame(now)
	t.from = t.to
	t.to = to
	t.start = now
	t.exiting = true
}

// Frame returns the visual state at now.
func (t Transition) Frame(now time.Time) Frame {
	elapsed := now.Sub(t.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if t.exiting {
		if elapsed < TransitionDuration {
			return exitFrame(t.leaving, EaseStandard.At(fraction(elapsed, TransitionDuration)))
		}
		elapsed -= TransitionDuration
	}
	return enterFrame(t.to, elapsed)
}

// Settled reports whether the transition has finished at now.
func (t Transition) Settled(now time.Time) bool {
	return t.Frame(now).Settled()
}

// exitFrame fades and grows the outgoing card from the state it had when
// the exit started. Text stays where it was.
func exitFrame(from Frame, p float64) Frame {
	f := from
	f.Phase = PhaseExit
	f.Opacity = from.Opacity * (1 - p)
	f.Scale = from.Scale + 0.2*p
	return f
}

func enterFrame(index int, elapsed time.Duration) Frame {
	p := EaseStandard.At(fraction(elapsed, TransitionDuration))
	content := reveal(elapsed - ContentDelay)
	title := reveal(elapsed - TitleDelay)
	subtitle := reveal(elapsed - SubtitleDelay)

	phase := PhaseEnter
	if elapsed >= EnterDuration {
		phase = PhaseSettled
	}
	return Frame{
		Index:           index,
		Phase:           phase,
		Opacity:         p,
		Scale:           0.8 + 0.2*p,
		ContentOpacity:  content,
		ContentOffset:   ContentRise * (1 - content),
		TitleOpacity:    title,
		TitleOffset:     TextRise * (1 - title),
		SubtitleOpacity: subtitle,
		SubtitleOffset:  TextRise * (1 - subtitle),
	}
}

// HintOpacity returns the navigation hint opacity sinceMount after the view
// was mounted.
func HintOpacity(sinceMount time.Duration) float64 {
	return EaseStandard.At(fraction(sinceMount-HintDelay, HintFadeDuration))
}

// reveal returns eased progress of a text reveal that started elapsed ago.
func reveal(elapsed time.Duration) float64 {
	return EaseStandard.At(fraction(elapsed, RevealDuration))
}

func fraction(elapsed, total time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= total {
		return 1
	}
	return float64(elapsed) / float64(total)
}
