package threads

import (
	"errors"
	"strings"

	"campus/internal/models"
)

var (
	ErrTitleRequired    = errors.New("Title cannot be empty")
	ErrBodyRequired     = errors.New("Body cannot be empty")
	ErrUnitRequired     = errors.New("Classroom threads need a unit")
	ErrCategoryRequired = errors.New("Choose a category")
)

// ValidateNew checks a creation payload before it is sent to the backend.
// A classroom thread must reference a unit; a generic thread must carry
// a category. Errors are user-facing and shown inline by the form.
func ValidateNew(n models.NewThread) error {
	if strings.TrimSpace(n.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(n.Body) == "" {
		return ErrBodyRequired
	}
	switch n.Type {
	case models.ThreadClassroom:
		if strings.TrimSpace(n.UnitID) == "" {
			return ErrUnitRequired
		}
	case models.ThreadGeneric:
		if strings.TrimSpace(n.Category) == "" {
			return ErrCategoryRequired
		}
	}
	return nil
}
