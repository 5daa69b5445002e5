package threads

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"campus/internal/models"
)

func TestValidateNew(t *testing.T) {
	valid := models.NewThread{
		Title:  "Week 3 recursion question",
		Body:   "How does the base case work here?",
		Type:   models.ThreadClassroom,
		UnitID: "unit-3",
	}

	t.Run("valid classroom thread", func(t *testing.T) {
		assert.NoError(t, ValidateNew(valid))
	})

	t.Run("valid generic thread", func(t *testing.T) {
		n := models.NewThread{
			Title:    "Study group for finals",
			Body:     "Anyone interested?",
			Type:     models.ThreadGeneric,
			Category: "study-groups",
		}
		assert.NoError(t, ValidateNew(n))
	})

	t.Run("blank title", func(t *testing.T) {
		n := valid
		n.Title = "   "
		assert.ErrorIs(t, ValidateNew(n), ErrTitleRequired)
	})

	t.Run("blank body", func(t *testing.T) {
		n := valid
		n.Body = ""
		assert.ErrorIs(t, ValidateNew(n), ErrBodyRequired)
	})

	t.Run("classroom without unit", func(t *testing.T) {
		n := valid
		n.UnitID = ""
		assert.ErrorIs(t, ValidateNew(n), ErrUnitRequired)
	})

	t.Run("generic without category", func(t *testing.T) {
		n := valid
		n.Type = models.ThreadGeneric
		n.UnitID = ""
		assert.ErrorIs(t, ValidateNew(n), ErrCategoryRequired)
	})
}
