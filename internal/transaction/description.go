package transaction

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxDescriptionLength = 255

// Description is a trimmed free-text annotation, non-blank and at most 255
// characters long.
type Description struct {
	value string
}

func NewDescription(value string) (Description, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Description{}, fmt.Errorf("%w: description must not be blank", ErrInvalidArgument)
	}

	if utf8.RuneCountInString(trimmed) > maxDescriptionLength {
		return Description{}, fmt.Errorf("%w: description must be at most %d characters", ErrInvalidArgument, maxDescriptionLength)
	}

	return Description{value: trimmed}, nil
}

// Contains reports a case-insensitive substring match. An empty keyword
// matches nothing.
func (d Description) Contains(keyword string) bool {
	if keyword == "" {
		return false
	}

	return strings.Contains(strings.ToLower(d.value), strings.ToLower(keyword))
}

func (d Description) Len() int { return utf8.RuneCountInString(d.value) }

func (d Description) String() string { return d.value }
