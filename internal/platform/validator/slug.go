// Package validator checks route input before it is sent to the CMS or
// used to build file paths.
package validator

import (
	"errors"
	"fmt"
)

// MaxSlugLength is the longest slug accepted as a post UID.
const MaxSlugLength = 200

var (
	ErrSlugEmpty   = errors.New("slug cannot be empty")
	ErrSlugTooLong = errors.New("slug is too long")
	// ErrInvalidSlugFormat allows only lowercase ASCII letters, digits,
	// hyphens and underscores. Dots and slashes never pass.
	ErrInvalidSlugFormat = errors.New("slug contains an invalid character")
)

// ValidateSlug reports whether slug can name a post page.
func ValidateSlug(slug string) error {
	switch {
	case slug == "":
		return ErrSlugEmpty
	case len(slug) > MaxSlugLength:
		return ErrSlugTooLong
	}

	for i := 0; i < len(slug); i++ {
		if !isSlugByte(slug[i]) {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidSlugFormat, slug[i], i)
		}
	}
	return nil
}

func isSlugByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}
