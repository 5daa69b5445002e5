package threads

import (
	"sort"
	"strings"

	"campus/internal/models"
)

// TypeAll disables the thread-type filter
const TypeAll = "all"

// Query describes one filtering/sorting pass over a thread list
type Query struct {
	Search   string // free-text, case-insensitive substring
	Type     string // "all"/"" matches everything
	UnitID   string // classroom threads only; "" = no filter
	Category string // generic threads only; "" = no filter
	Sort     models.SortKey
}

// Apply filters and sorts a thread list according to the query.
// The input slice is never modified; the result is a fresh slice.
// All active filters combine with AND. Ties keep their prior relative
// order, so repeated application with the same query is stable.
func Apply(list []models.Thread, q Query) []models.Thread {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]models.Thread, 0, len(list))
	for _, t := range list {
		if search != "" && !matchesSearch(t, search) {
			continue
		}
		if q.Type != "" && q.Type != TypeAll && string(t.Type) != q.Type {
			continue
		}
		// Unit filter only makes sense for classroom threads; anything
		// else is excluded even if its unit id happened to match.
		if q.UnitID != "" && (t.Type != models.ThreadClassroom || t.UnitID != q.UnitID) {
			continue
		}
		// Same exclusion rule for the generic-only category filter.
		if q.Category != "" && (t.Type != models.ThreadGeneric || t.Category != q.Category) {
			continue
		}
		out = append(out, t)
	}

	switch q.Sort {
	case models.SortReplies:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReplyCount > out[j].ReplyCount
		})
	case models.SortCreated:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	default: // models.SortRecent
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		})
	}

	return out
}

func matchesSearch(t models.Thread, search string) bool {
	if strings.Contains(strings.ToLower(t.Title), search) ||
		strings.Contains(strings.ToLower(t.Body), search) ||
		strings.Contains(strings.ToLower(t.AuthorName), search) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return false
}

// Stats computes derived counts over a thread list
func Stats(list []models.Thread) models.ThreadStats {
	s := models.ThreadStats{Total: len(list)}
	for _, t := range list {
		if t.Resolved {
			s.Resolved++
		}
		switch t.Type {
		case models.ThreadClassroom:
			s.Classroom++
		case models.ThreadGeneric:
			s.Generic++
		}
	}
	s.Open = s.Total - s.Resolved
	return s
}
