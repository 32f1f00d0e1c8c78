package bubbletea

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/storyview"
	"github.com/lucasb-eyer/go-colorful"
)

// markerGlyph draws progress markers.
const markerGlyph = "━"

// minTextOpacity is the opacity below which text is not drawn at all.
const minTextOpacity = 0.02

// renderConfig holds all rendering parameters for renderSlideshow.
type renderConfig struct {
	frame    storyview.Frame
	story    storyview.Story // Story at frame.Index
	gradient storyview.Gradient
	palette  storyview.Palette
	renderer *lipgloss.Renderer
	width    int
	height   int

	// Progress indicator
	markers []int // Width in cells of each marker
	active  int   // Index of the highlighted marker

	// Navigation hint, drawn on the given background at the given opacity
	hint        func(bg string, opacity float64) string
	hintOpacity float64
}

// renderSlideshow draws one full-screen frame.
// If renderer is nil, the default lipgloss renderer is used.
func renderSlideshow(cfg renderConfig) string {
	w, h := cfg.width, cfg.height
	if w <= 0 || h <= 0 {
		return ""
	}
	r := cfg.renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	stage := cfg.palette.Background

	cardW := clampInt(int(math.Round(float64(w)*cfg.frame.Scale)), 0, w)
	cardH := clampInt(int(math.Round(float64(h)*cfg.frame.Scale)), 0, h)
	left := (w - cardW) / 2
	top := (h - cardH) / 2

	// Overlays sit one row in from the edges when there is room for it.
	progressRow, hintRow := 0, h-1
	if h >= 8 {
		progressRow, hintRow = 1, h-2
	}

	centre := top + cardH/2
	contentShift := unitsToRows(cfg.frame.ContentOffset)
	titleRow := centre - 1 + contentShift + unitsToRows(cfg.frame.TitleOffset)
	subtitleRow := centre + 1 + contentShift + unitsToRows(cfg.frame.SubtitleOffset)

	textOpacity := cfg.frame.Opacity * cfg.frame.ContentOpacity

	lines := make([]string, h)
	for row := 0; row < h; row++ {
		bg, inCard := cardColor(cfg, row, top, cardH, stage)
		segLeft, segWidth := 0, w
		if inCard {
			segLeft, segWidth = left, cardW
		}

		var content string
		switch {
		case row == progressRow:
			content = renderProgress(r, cfg, bg, segWidth)
		case row == hintRow && h > 2:
			if cfg.hint != nil && cfg.hintOpacity > minTextOpacity {
				content = cfg.hint(bg, cfg.hintOpacity)
				content = ansi.Truncate(content, segWidth, "…")
			}
		case inCard && row == titleRow:
			content = renderText(r, cfg.story.Title, bg, cfg.palette.Foreground, textOpacity*cfg.frame.TitleOpacity, true, segWidth)
		case inCard && row == subtitleRow:
			content = renderText(r, cfg.story.Subtitle, bg, cfg.palette.Foreground, textOpacity*cfg.frame.SubtitleOpacity, false, segWidth)
		}

		lines[row] = composeRow(r, w, segLeft, segWidth, stage, bg, content)
	}
	return strings.Join(lines, "\n")
}

// cardColor returns the background color of row and whether the row
// intersects the card.
func cardColor(cfg renderConfig, row, top, cardH int, stage string) (string, bool) {
	if cardH == 0 || row < top || row >= top+cardH {
		return stage, false
	}
	t := 0.0
	if cardH > 1 {
		t = float64(row-top) / float64(cardH-1)
	}
	c := blendHex(cfg.gradient.From, cfg.gradient.To, t)
	return blendHex(stage, c, cfg.frame.Opacity), true
}

// composeRow lays out one terminal row: stage margins on either side of a
// segment of segWidth cells filled with bg and centred content.
func composeRow(r *lipgloss.Renderer, width, segLeft, segWidth int, stage, bg, content string) string {
	var sb strings.Builder
	sb.WriteString(fill(r, segLeft, stage))

	pad := segWidth - lipgloss.Width(content)
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(fill(r, pad/2, bg))
	sb.WriteString(content)
	sb.WriteString(fill(r, pad-pad/2, bg))

	sb.WriteString(fill(r, width-segLeft-segWidth, stage))
	return sb.String()
}

// renderText draws a single line of story text faded toward bg by opacity.
func renderText(r *lipgloss.Renderer, text, bg, fg string, opacity float64, bold bool, width int) string {
	if text == "" || opacity < minTextOpacity || width <= 0 {
		return ""
	}
	style := r.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(blendHex(bg, fg, opacity))).
		Bold(bold)
	return style.Render(ansi.Truncate(text, width, "…"))
}

// renderProgress draws one marker per story with the active one wider and
// brighter. Decks too long for the row fall back to a position counter.
func renderProgress(r *lipgloss.Renderer, cfg renderConfig, bg string, width int) string {
	n := len(cfg.markers)
	if n == 0 || width <= 0 {
		return ""
	}

	total := n - 1 // gaps
	for _, cells := range cfg.markers {
		total += cells
	}

	base := r.NewStyle().Background(lipgloss.Color(bg))
	if total > width {
		counter := fmt.Sprintf("%d/%d", cfg.active+1, n)
		return base.Foreground(lipgloss.Color(cfg.palette.Indicator)).Render(ansi.Truncate(counter, width, ""))
	}

	activeStyle := base.Foreground(lipgloss.Color(cfg.palette.Indicator))
	dimStyle := base.Foreground(lipgloss.Color(cfg.palette.IndicatorDimmed))

	parts := make([]string, 0, 2*n-1)
	for i, cells := range cfg.markers {
		if i > 0 {
			parts = append(parts, base.Render(" "))
		}
		style := dimStyle
		if i == cfg.active {
			style = activeStyle
		}
		parts = append(parts, style.Render(strings.Repeat(markerGlyph, cells)))
	}
	return strings.Join(parts, "")
}

// fill returns n spaces on background color.
func fill(r *lipgloss.Renderer, n int, color string) string {
	if n <= 0 {
		return ""
	}
	return r.NewStyle().Background(lipgloss.Color(color)).Render(strings.Repeat(" ", n))
}

// blendHex mixes two "#RRGGBB" colors in Lab space; t=0 gives from, t=1 gives to.
// Unparseable input returns to unchanged.
func blendHex(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	t = math.Max(0, math.Min(1, t))
	return a.BlendLab(b, t).Clamped().Hex()
}

// unitsToRows converts a gesture-unit distance into whole terminal rows.
func unitsToRows(units float64) int {
	return int(math.Round(units / RowUnits))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
