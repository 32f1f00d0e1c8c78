package storyview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownModality is returned when parsing an unrecognized modality name.
var ErrUnknownModality = errors.New("unknown modality")

// Modality is the presumed input modality of the viewer.
type Modality int

// Input modalities.
const (
	ModalityKeyboard Modality = iota
	ModalityTouch
)

// String returns the modality name as used in config files.
func (m Modality) String() string {
	switch m {
	case ModalityTouch:
		return "touch"
	default:
		return "keyboard"
	}
}

// ParseModality parses a modality name. An empty name means keyboard.
func ParseModality(name string) (Modality, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "keyboard":
		return ModalityKeyboard, nil
	case "touch":
		return ModalityTouch, nil
	default:
		return ModalityKeyboard, fmt.Errorf("%w: %q", ErrUnknownModality, name)
	}
}

// NavigationHint returns the hint text shown to users of modality m.
func NavigationHint(m Modality) string {
	if m == ModalityTouch {
		return "Swipe up or down to navigate"
	}
	return "Use ↑ and ↓ arrow keys to navigate"
}
