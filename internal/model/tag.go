package model

import (
	"errors"
	"fmt"
	"strings"
)

// TagType separates the two tag slots
type TagType string

const (
	TagTypePrimary   TagType = "primary"
	TagTypeSecondary TagType = "secondary"
)

// ErrInvalidTagName is returned for names the frontmatter block cannot carry
var ErrInvalidTagName = errors.New("invalid tag name")

// ErrInvalidTagType is returned for anything but primary or secondary
var ErrInvalidTagType = errors.New("invalid tag type")

// ParseTagType converts a string to a TagType
func ParseTagType(s string) (TagType, error) {
	switch TagType(strings.ToLower(strings.TrimSpace(s))) {
	case TagTypePrimary:
		return TagTypePrimary, nil
	case TagTypeSecondary:
		return TagTypeSecondary, nil
	default:
		return "", fmt.Errorf("%w: %q (expected primary or secondary)", ErrInvalidTagType, s)
	}
}

// Tag is one entry of the tag catalog
type Tag struct {
	// ID is the unique identifier (UUID)
	ID string `json:"id"`

	// Name is the display name, unique within its type
	Name string `json:"name"`

	// Order is the zero-based position within its type
	Order int `json:"order"`

	// Type is primary or secondary
	Type TagType `json:"type"`
}

// ValidateTagName rejects names that would not survive a frontmatter round trip.
//
// The tags line is a bracketed, comma separated list, so commas and brackets
// cannot appear in a name, and neither can line breaks.
func ValidateTagName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidTagName)
	}

	if strings.ContainsAny(name, ",[]\r\n") {
		return fmt.Errorf("%w: %q must not contain commas, brackets or line breaks", ErrInvalidTagName, name)
	}

	return nil
}
