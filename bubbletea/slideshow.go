package bubbletea

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/storyview"
	"go.uber.org/zap"
)

// RowUnits is the number of gesture units in one terminal row. With the
// default threshold of 50 units a drag must cover three rows to navigate.
const RowUnits = 20.0

// frameRate is the animation frame rate while a transition is running.
const frameRate = 30

// StatusDuration is how long a status message such as "copied" stays on
// screen.
const StatusDuration = 3 * time.Second

// frameMsg asks the model to advance its animations by one frame.
type frameMsg struct{}

// statusExpiredMsg clears the status line if it is still the one set at seq.
type statusExpiredMsg struct {
	seq int
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

// SlideshowModel is the Bubble Tea model showing a deck one story at a time.
type SlideshowModel struct {
	show *storyview.Slideshow
	bus  *storyview.KeyBus

	// Animation state
	nav       *navState
	indicator *indicator
	mountedAt time.Time
	clock     func() time.Time
	ticking   bool

	// Collaborators
	clipboard storyview.Clipboard
	logger    *zap.Logger

	// UI state
	keymap   KeyMap
	help     help.Model
	theme    storyview.Theme
	palette  storyview.Palette
	renderer *lipgloss.Renderer
	modality storyview.Modality
	status   string
	statusAt time.Time
	statusN  int
	width    int
	height   int
	ready    bool
}

// Sources of a story change, as logged.
const (
	sourceBus   = "bus"
	sourceKey   = "key"
	sourceWheel = "wheel"
	sourceSwipe = "swipe"
)

// navState follows cursor moves made through the slideshow, whoever makes
// them. It is shared by every copy of the model.
type navState struct {
	transition storyview.Transition
	source     string // Input currently driving the slideshow
	changed    bool   // A move happened since the last Update
	clock      func() time.Time
	logger     *zap.Logger
	show       *storyview.Slideshow
}

// storyChanged is registered with the slideshow and runs on every cursor move.
func (n *navState) storyChanged(index int) {
	n.transition.Retarget(index, n.clock())
	n.changed = true
	n.logger.Debug("story changed",
		zap.Int("index", index),
		zap.String("id", n.show.Current().ID),
		zap.String("source", n.source),
	)
}

// from runs fn with source recorded as the cause of any story change.
func (n *navState) from(source string, fn func()) {
	n.source = source
	defer func() { n.source = sourceBus }()
	fn()
}

// SlideshowOption configures a SlideshowModel.
type SlideshowOption func(*slideshowConfig)

type slideshowConfig struct {
	renderer  *lipgloss.Renderer
	theme     storyview.Theme
	threshold float64
	modality  storyview.Modality
	clipboard storyview.Clipboard
	logger    *zap.Logger
	bus       *storyview.KeyBus
	clock     func() time.Time
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme resolving story backgrounds.
func WithTheme(t storyview.Theme) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.theme = t
	}
}

// WithSwipeThreshold sets the minimum drag distance, in gesture units.
func WithSwipeThreshold(t float64) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.threshold = t
	}
}

// WithModality selects the navigation hint shown at the bottom of the screen.
func WithModality(m storyview.Modality) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.modality = m
	}
}

// WithClipboard enables copying the current story.
func WithClipboard(c storyview.Clipboard) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.clipboard = c
	}
}

// WithLogger sets the logger for navigation and clipboard events.
func WithLogger(l *zap.Logger) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.logger = l
	}
}

// WithKeyBus mounts the slideshow on an existing key bus instead of a private one.
func WithKeyBus(b *storyview.KeyBus) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.bus = b
	}
}

// WithClock sets the time source used for animations.
func WithClock(now func() time.Time) SlideshowOption {
	return func(cfg *slideshowConfig) {
		cfg.clock = now
	}
}

// NewSlideshowModel creates a SlideshowModel showing the first story of deck.
// The model's slideshow is mounted on the key bus until it quits.
func NewSlideshowModel(deck storyview.Deck, opts ...SlideshowOption) SlideshowModel {
	cfg := &slideshowConfig{
		threshold: storyview.DefaultSwipeThreshold,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	theme := cfg.theme
	if theme == nil {
		theme = fallbackTheme{}
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	bus := cfg.bus
	if bus == nil {
		bus = storyview.NewKeyBus()
	}

	now := cfg.clock()
	nav := &navState{
		transition: storyview.NewTransition(0, now),
		source:     sourceBus,
		clock:      cfg.clock,
		logger:     logger,
	}
	show := storyview.NewSlideshow(deck,
		storyview.WithSwipeThreshold(cfg.threshold),
		storyview.WithOnStoryChange(nav.storyChanged),
	)
	nav.show = show
	show.Mount(bus)

	return SlideshowModel{
		show:      show,
		bus:       bus,
		nav:       nav,
		indicator: newIndicator(deck.Len(), show.Index()),
		mountedAt: now,
		clock:     cfg.clock,
		ticking:   true, // Init starts the first tick
		clipboard: cfg.clipboard,
		logger:    logger,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		palette:   theme.Palette(),
		renderer:  cfg.renderer,
		modality:  cfg.modality,
	}
}

// Index returns the position of the current story.
func (m SlideshowModel) Index() int {
	return m.show.Index()
}

// Mounted reports whether the model still listens to its key bus.
func (m SlideshowModel) Mounted() bool {
	return m.show.Mounted()
}

// Close releases the key bus subscription. It is safe to call more than once.
func (m SlideshowModel) Close() {
	m.show.Unmount()
}

// Init implements tea.Model.
func (m SlideshowModel) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m SlideshowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.show.Unmount()
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Previous):
			m.nav.from(sourceKey, func() { m.bus.Dispatch(storyview.KeyArrowUp) })
		case key.Matches(msg, m.keymap.Next):
			m.nav.from(sourceKey, func() { m.bus.Dispatch(storyview.KeyArrowDown) })
		case key.Matches(msg, m.keymap.Copy):
			cmd = m.copyCurrent()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case frameMsg:
		cmd = m.nextFrame()

	case statusExpiredMsg:
		if msg.seq == m.statusN {
			m.status = ""
		}
	}

	// Moves made by other producers on a shared bus land here too.
	if m.nav.changed {
		m.nav.changed = false
		m.status = ""
		cmd = tea.Batch(cmd, m.startTicking())
	}
	return m, cmd
}

// nextFrame advances the progress indicator and keeps ticking until every
// animation has come to rest.
func (m *SlideshowModel) nextFrame() tea.Cmd {
	now := m.clock()
	indicatorSettled := m.indicator.step(m.show.Index())
	hintShown := now.Sub(m.mountedAt) >= storyview.HintDelay+storyview.HintFadeDuration
	if indicatorSettled && hintShown && m.nav.transition.Settled(now) {
		m.ticking = false
		return nil
	}
	return frameTick()
}

// handleMouse maps a left-button drag onto a touch gesture and the wheel
// onto single steps.
func (m *SlideshowModel) handleMouse(msg tea.MouseMsg) {
	y := float64(msg.Y) * RowUnits

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.nav.from(sourceWheel, func() { m.show.Advance(storyview.Next) })
	case msg.Button == tea.MouseButtonWheelUp:
		m.nav.from(sourceWheel, func() { m.show.Advance(storyview.Previous) })
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.show.TouchStart(y)
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.show.TouchMove(y)
	case msg.Action == tea.MouseActionRelease:
		m.nav.from(sourceSwipe, func() { m.show.TouchEnd() })
	}
}

func (m *SlideshowModel) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameTick()
}

// copyCurrent copies the current story and returns a command that clears
// the resulting status after StatusDuration.
func (m *SlideshowModel) copyCurrent() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	story := m.show.Current()
	if err := m.clipboard.Copy(story.Text()); err != nil {
		m.logger.Warn("copy story failed", zap.String("id", story.ID), zap.Error(err))
		m.setStatus("copy failed")
	} else {
		m.setStatus("copied")
	}

	seq := m.statusN
	return tea.Tick(StatusDuration, func(time.Time) tea.Msg {
		return statusExpiredMsg{seq: seq}
	})
}

func (m *SlideshowModel) setStatus(status string) {
	m.status = status
	m.statusAt = m.clock()
	m.statusN++
}

// View implements tea.Model.
func (m SlideshowModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	now := m.clock()
	frame := m.nav.transition.Frame(now)
	story := m.show.Deck().At(frame.Index)
	gradient, _ := m.theme.Background(story.Background)

	return renderSlideshow(renderConfig{
		frame:       frame,
		story:       story,
		gradient:    gradient,
		palette:     m.palette,
		renderer:    m.renderer,
		width:       m.width,
		height:      m.height,
		markers:     m.indicator.cells(),
		active:      m.show.Index(),
		hint:        m.hintView,
		hintOpacity: storyview.HintOpacity(now.Sub(m.mountedAt)),
	})
}

// statusLine returns the status to show, or "" once it has expired.
func (m SlideshowModel) statusLine() string {
	if m.status == "" || m.clock().Sub(m.statusAt) >= StatusDuration {
		return ""
	}
	return m.status
}

// hintView renders the navigation hint on background bg, faded to opacity.
func (m SlideshowModel) hintView(bg string, opacity float64) string {
	muted := lipgloss.Color(blendHex(bg, m.palette.Muted, opacity))
	accent := lipgloss.Color(blendHex(bg, m.palette.Accent, opacity))
	base := m.newStyle().Background(lipgloss.Color(bg))

	hint := base.Foreground(muted).Render(storyview.NavigationHint(m.modality))
	if m.modality == storyview.ModalityKeyboard {
		h := m.help
		h.Styles.ShortKey = base.Foreground(accent)
		h.Styles.ShortDesc = base.Foreground(muted)
		h.Styles.ShortSeparator = base.Foreground(muted)
		h.Styles.Ellipsis = base.Foreground(muted)
		// The key bindings replace the plain sentence when they fit.
		if bindings := h.ShortHelpView(m.keymap.ShortHelp()); lipgloss.Width(bindings) <= m.width {
			hint = bindings
		}
	}

	if status := m.statusLine(); status != "" {
		hint += base.Foreground(accent).Render("  " + status)
	}
	return hint
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m SlideshowModel) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// fallbackTheme is used when no theme is configured. Every story gets the
// same neutral gradient.
type fallbackTheme struct{}

func (fallbackTheme) Palette() storyview.Palette {
	return storyview.Palette{
		Background:      "#000000",
		Foreground:      "#ffffff",
		Muted:           "#a6adc8",
		Indicator:       "#ffffff",
		IndicatorDimmed: "#7f7f7f",
		Accent:          "#89b4fa",
	}
}

func (fallbackTheme) Background(string) (storyview.Gradient, bool) {
	return storyview.Gradient{From: "#334155", To: "#0f172a"}, false
}
