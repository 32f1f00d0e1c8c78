package storyview

import (
	"fmt"
	"math"
)

// ValidationReason identifies why a Config is invalid.
type ValidationReason string

// Validation error reasons.
const (
	ErrEmptyDeck         ValidationReason = "empty_deck"
	ErrMissingID         ValidationReason = "missing_id"
	ErrDuplicateID       ValidationReason = "duplicate_id"
	ErrMissingTitle      ValidationReason = "missing_title"
	ErrUnknownBackground ValidationReason = "unknown_background"
	ErrInvalidThreshold  ValidationReason = "invalid_threshold"
)

// ValidationError describes a single validation failure in a Config.
type ValidationError struct {
	Story  int              // Index of the offending story, -1 for deck or settings errors
	Value  string           // The offending value (ID, token, threshold)
	Reason ValidationReason // Why the config is invalid
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	switch e.Reason {
	case ErrEmptyDeck:
		return "deck has no stories"
	case ErrMissingID:
		return fmt.Sprintf("story %d: missing id", e.Story)
	case ErrDuplicateID:
		return fmt.Sprintf("story %d: duplicate id %q", e.Story, e.Value)
	case ErrMissingTitle:
		return fmt.Sprintf("story %d: missing title", e.Story)
	case ErrUnknownBackground:
		return fmt.Sprintf("story %d: unknown background %q", e.Story, e.Value)
	case ErrInvalidThreshold:
		return fmt.Sprintf("swipe threshold %s must be positive and finite", e.Value)
	default:
		return fmt.Sprintf("story %d: invalid value %q", e.Story, e.Value)
	}
}

// ValidSwipeThreshold reports whether t can be used as a swipe threshold:
// a positive, finite distance.
func ValidSwipeThreshold(t float64) bool {
	return t > 0 && !math.IsInf(t, 1)
}

// ValidateConfig checks that cfg can be shown. Background tokens are checked
// against theme when it is non-nil. Returns nil if the config is valid.
func ValidateConfig(cfg Config, theme Theme) []ValidationError {
	var errors []ValidationError

	if !ValidSwipeThreshold(cfg.Settings.SwipeThreshold) {
		errors = append(errors, ValidationError{
			Story:  -1,
			Value:  fmt.Sprintf("%g", cfg.Settings.SwipeThreshold),
			Reason: ErrInvalidThreshold,
		})
	}

	if cfg.Deck.Len() == 0 {
		return append(errors, ValidationError{Story: -1, Reason: ErrEmptyDeck})
	}

	seen := make(map[string]int, cfg.Deck.Len())
	for i, story := range cfg.Deck.Stories {
		if story.ID == "" {
			errors = append(errors, ValidationError{Story: i, Reason: ErrMissingID})
		} else if _, dup := seen[story.ID]; dup {
			errors = append(errors, ValidationError{Story: i, Value: story.ID, Reason: ErrDuplicateID})
		} else {
			seen[story.ID] = i
		}

		if story.Title == "" {
			errors = append(errors, ValidationError{Story: i, Reason: ErrMissingTitle})
		}

		if theme != nil {
			if _, ok := theme.Background(story.Background); !ok {
				errors = append(errors, ValidationError{Story: i, Value: story.Background, Reason: ErrUnknownBackground})
			}
		}
	}

	return errors
}
