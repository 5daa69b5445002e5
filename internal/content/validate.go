package content

import (
	"errors"
	"net/url"
	"strings"

	"campus/internal/models"
)

var (
	ErrEmptyBody   = errors.New("Content cannot be empty")
	ErrInvalidURL  = errors.New("Enter a valid URL (http:// or https://)")
	ErrNotEditable = errors.New("This content type cannot be edited here")
)

// Validate checks an edited content body before it is sent to the backend.
// Link and video items store a URL in the body, so those must parse as an
// absolute http(s) URL. A failed check blocks submission entirely.
func Validate(typ models.ContentType, body string) error {
	if !typ.Editable() {
		return ErrNotEditable
	}
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return ErrEmptyBody
	}
	if typ == models.ContentLink || typ == models.ContentVideo {
		u, err := url.Parse(trimmed)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return ErrInvalidURL
		}
	}
	return nil
}
