package storyview

// Slideshow is the navigation state of a story deck: a clamped cursor driven
// by swipe gestures and arrow keys.
type Slideshow struct {
	deck      Deck
	cursor    Cursor
	threshold float64
	gesture   Gesture
	onChange  func(index int)

	unsubscribe func()
}

// SlideshowOption configures a Slideshow.
type SlideshowOption func(*slideshowConfig)

type slideshowConfig struct {
	threshold float64
	onChange  func(index int)
}

// WithSwipeThreshold sets the minimum swipe distance. Values rejected by
// ValidSwipeThreshold are ignored.
func WithSwipeThreshold(t float64) SlideshowOption {
	return func(cfg *slideshowConfig) {
		if ValidSwipeThreshold(t) {
			cfg.threshold = t
		}
	}
}

// WithOnStoryChange registers fn to be called with the new index after every
// cursor move.
func WithOnStoryChange(fn func(index int)) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.onChange = fn
	}
}

// NewSlideshow creates a Slideshow positioned at the first story of deck.
func NewSlideshow(deck Deck, opts ...SlideshowOption) *Slideshow {
	cfg := &slideshowConfig{threshold: DefaultSwipeThreshold}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Slideshow{
		deck:      deck,
		cursor:    NewCursor(deck.Len()),
		threshold: cfg.threshold,
		onChange:  cfg.onChange,
	}
}

// Deck returns the deck being shown.
func (s *Slideshow) Deck() Deck {
	return s.deck
}

// Index returns the cursor position.
func (s *Slideshow) Index() int {
	return s.cursor.Index()
}

// Current returns the story at the cursor.
func (s *Slideshow) Current() Story {
	return s.deck.At(s.cursor.Index())
}

// Threshold returns the configured swipe threshold.
func (s *Slideshow) Threshold() float64 {
	return s.threshold
}

// Advance moves one story in direction d, doing nothing at either end of the
// deck. Reports whether the cursor moved.
func (s *Slideshow) Advance(d Direction) bool {
	if !s.cursor.Advance(d) {
		return false
	}
	if s.onChange != nil {
		s.onChange(s.cursor.Index())
	}
	return true
}

// HandleSwipeEnd navigates according to a completed gesture from start to end.
// Incomplete samples and gestures inside the dead zone are ignored.
func (s *Slideshow) HandleSwipeEnd(start, end Coord) bool {
	d, ok := ClassifySwipe(start, end, s.threshold)
	if !ok {
		return false
	}
	return s.Advance(d)
}

// TouchStart begins a gesture at vertical position y.
func (s *Slideshow) TouchStart(y float64) {
	s.gesture.Begin(y)
}

// TouchMove records the current vertical position of the gesture.
func (s *Slideshow) TouchMove(y float64) {
	s.gesture.Move(y)
}

// TouchEnd completes the gesture and navigates if it was a swipe.
func (s *Slideshow) TouchEnd() bool {
	return s.HandleSwipeEnd(s.gesture.End())
}

// HandleKey maps KeyArrowUp to the previous story and KeyArrowDown to the
// next one. Other keys are ignored.
func (s *Slideshow) HandleKey(key string) bool {
	switch key {
	case KeyArrowUp:
		return s.Advance(Previous)
	case KeyArrowDown:
		return s.Advance(Next)
	default:
		return false
	}
}

// Mount subscribes the slideshow to src until Unmount is called. Mounting an
// already mounted slideshow releases the previous subscription first.
func (s *Slideshow) Mount(src KeySource) {
	s.Unmount()
	s.unsubscribe = src.Subscribe(func(key string) {
		s.HandleKey(key)
	})
}

// Unmount releases the key subscription. It is a no-op when not mounted.
func (s *Slideshow) Unmount() {
	if s.unsubscribe == nil {
		return
	}
	s.unsubscribe()
	s.unsubscribe = nil
}

// Mounted reports whether the slideshow holds a key subscription.
func (s *Slideshow) Mounted() bool {
	return s.unsubscribe != nil
}

// Progress returns one marker per story in deck order.
func (s *Slideshow) Progress() []Marker {
	return Progress(s.cursor.Index(), s.deck.Len())
}

// Marker is a single entry of the progress indicator.
type Marker struct {
	Active bool
}

// Progress returns n markers with only the one at index active.
func Progress(index, n int) []Marker {
	if n <= 0 {
		return nil
	}
	markers := make([]Marker, n)
	if index >= 0 && index < n {
		markers[index].Active = true
	}
	return markers
}
