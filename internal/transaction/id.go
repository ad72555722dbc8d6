package transaction

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID uniquely identifies a transaction. IDs compare by value.
type ID uuid.UUID

// NewID returns a fresh random identifier.
func NewID() ID {
	return ID(uuid.New())
}

// ParseID parses the canonical textual form of an identifier.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, fmt.Errorf("%w: id must not be blank", ErrInvalidArgument)
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: malformed id %q", ErrInvalidArgument, s)
	}

	return ID(u), nil
}

func (id ID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the identifier is the all-zero value.
func (id ID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
