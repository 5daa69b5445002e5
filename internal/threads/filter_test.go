package threads

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/models"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func classroomThread(id, title, unitID string, replies int) models.Thread {
	return models.Thread{
		ID:         id,
		Title:      title,
		Body:       "body of " + title,
		AuthorName: "Dana Whitfield",
		Type:       models.ThreadClassroom,
		UnitID:     unitID,
		ReplyCount: replies,
		CreatedAt:  base,
		UpdatedAt:  base,
	}
}

func genericThread(id, title, category string, replies int) models.Thread {
	return models.Thread{
		ID:         id,
		Title:      title,
		Body:       "body of " + title,
		AuthorName: "Sam Ortiz",
		Type:       models.ThreadGeneric,
		Category:   category,
		ReplyCount: replies,
		CreatedAt:  base,
		UpdatedAt:  base,
	}
}

func ids(list []models.Thread) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func TestApplySearch(t *testing.T) {
	list := []models.Thread{
		classroomThread("t1", "Recursion homework help", "unit-2", 3),
		genericThread("t2", "Cafeteria feedback", "campus-life", 1),
		classroomThread("t3", "Exam schedule", "unit-1", 0),
	}
	list[2].Tags = []string{"Deadlines", "exams"}

	t.Run("empty search is identity", func(t *testing.T) {
		got := Apply(list, Query{})
		assert.Len(t, got, len(list))
	})

	t.Run("whitespace-only search is identity", func(t *testing.T) {
		got := Apply(list, Query{Search: "   "})
		assert.Len(t, got, len(list))
	})

	t.Run("case-insensitive title match", func(t *testing.T) {
		got := Apply(list, Query{Search: "RECURSION"})
		require.Len(t, got, 1)
		assert.Equal(t, "t1", got[0].ID)
	})

	t.Run("matches body", func(t *testing.T) {
		got := Apply(list, Query{Search: "body of cafeteria"})
		require.Len(t, got, 1)
		assert.Equal(t, "t2", got[0].ID)
	})

	t.Run("matches author name", func(t *testing.T) {
		got := Apply(list, Query{Search: "ortiz"})
		require.Len(t, got, 1)
		assert.Equal(t, "t2", got[0].ID)
	})

	t.Run("matches tags", func(t *testing.T) {
		got := Apply(list, Query{Search: "deadline"})
		require.Len(t, got, 1)
		assert.Equal(t, "t3", got[0].ID)
	})

	t.Run("no match", func(t *testing.T) {
		got := Apply(list, Query{Search: "quantum"})
		assert.Empty(t, got)
	})
}

func TestApplyTypeAndScopeFilters(t *testing.T) {
	list := []models.Thread{
		classroomThread("c1", "Unit two question", "unit-2", 0),
		classroomThread("c2", "Unit one question", "unit-1", 0),
		genericThread("g1", "Lost keys", "campus-life", 0),
		genericThread("g2", "Study group", "study-groups", 0),
	}
	// A generic thread with a stray unit id must never pass the unit filter
	list[2].UnitID = "unit-2"

	t.Run("type all matches everything", func(t *testing.T) {
		assert.Len(t, Apply(list, Query{Type: TypeAll}), 4)
	})

	t.Run("type classroom", func(t *testing.T) {
		got := Apply(list, Query{Type: string(models.ThreadClassroom)})
		assert.ElementsMatch(t, []string{"c1", "c2"}, ids(got))
	})

	t.Run("unit filter excludes non-classroom threads", func(t *testing.T) {
		got := Apply(list, Query{UnitID: "unit-2"})
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, models.ThreadClassroom, got[0].Type)
	})

	t.Run("category filter excludes classroom threads", func(t *testing.T) {
		got := Apply(list, Query{Category: "campus-life"})
		require.Len(t, got, 1)
		assert.Equal(t, "g1", got[0].ID)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		got := Apply(list, Query{Search: "question", Type: string(models.ThreadClassroom), UnitID: "unit-1"})
		require.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})

	t.Run("result is always a subset of the input", func(t *testing.T) {
		got := Apply(list, Query{Search: "u", UnitID: "unit-1"})
		byID := map[string]bool{}
		for _, in := range list {
			byID[in.ID] = true
		}
		for _, out := range got {
			assert.True(t, byID[out.ID])
		}
	})
}

func TestApplySort(t *testing.T) {
	t.Run("replies descending", func(t *testing.T) {
		list := []models.Thread{
			genericThread("a", "A", "misc", 5),
			genericThread("b", "B", "misc", 1),
			genericThread("c", "C", "misc", 9),
		}
		got := Apply(list, Query{Sort: models.SortReplies})
		assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	})

	t.Run("recent is non-increasing by update time", func(t *testing.T) {
		list := []models.Thread{
			genericThread("a", "A", "misc", 0),
			genericThread("b", "B", "misc", 0),
			genericThread("c", "C", "misc", 0),
		}
		list[0].UpdatedAt = base.Add(1 * time.Hour)
		list[1].UpdatedAt = base.Add(3 * time.Hour)
		list[2].UpdatedAt = base.Add(2 * time.Hour)

		got := Apply(list, Query{Sort: models.SortRecent})
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].UpdatedAt.After(got[i-1].UpdatedAt))
		}
		assert.Equal(t, []string{"b", "c", "a"}, ids(got))
	})

	t.Run("created descending", func(t *testing.T) {
		list := []models.Thread{
			genericThread("old", "Old", "misc", 0),
			genericThread("new", "New", "misc", 0),
		}
		list[1].CreatedAt = base.Add(24 * time.Hour)

		got := Apply(list, Query{Sort: models.SortCreated})
		assert.Equal(t, []string{"new", "old"}, ids(got))
	})

	t.Run("ties preserve prior relative order", func(t *testing.T) {
		list := []models.Thread{
			genericThread("x", "X", "misc", 2),
			genericThread("y", "Y", "misc", 2),
			genericThread("z", "Z", "misc", 2),
		}
		got := Apply(list, Query{Sort: models.SortReplies})
		assert.Equal(t, []string{"x", "y", "z"}, ids(got))
	})

	t.Run("input list is not mutated", func(t *testing.T) {
		list := []models.Thread{
			genericThread("a", "A", "misc", 1),
			genericThread("b", "B", "misc", 9),
		}
		Apply(list, Query{Sort: models.SortReplies})
		assert.Equal(t, []string{"a", "b"}, ids(list))
	})
}

func TestStats(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		assert.Equal(t, models.ThreadStats{}, Stats(nil))
	})

	t.Run("counts", func(t *testing.T) {
		list := []models.Thread{
			classroomThread("c1", "A", "unit-1", 0),
			classroomThread("c2", "B", "unit-2", 0),
			genericThread("g1", "C", "misc", 0),
		}
		list[0].Resolved = true

		got := Stats(list)
		assert.Equal(t, models.ThreadStats{
			Total:     3,
			Resolved:  1,
			Open:      2,
			Classroom: 2,
			Generic:   1,
		}, got)
	})
}
