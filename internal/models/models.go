package models

import "time"

// ThreadType distinguishes classroom-scoped threads from platform-wide ones
type ThreadType string

const (
	ThreadClassroom ThreadType = "classroom"
	ThreadGeneric   ThreadType = "generic"
)

// Thread represents a discussion thread
type Thread struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Tags       []string   `json:"tags,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ReplyCount int        `json:"reply_count"`
	Resolved   bool       `json:"resolved"`
	Type       ThreadType `json:"type"`

	// Classroom threads always carry a unit reference
	UnitID string `json:"unit_id,omitempty"`

	// Generic threads always carry a category; visibility is optional
	Category   string `json:"category,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

// NewThread is the creation payload sent to the backend.
// Server-assigned fields (id, timestamps, reply count, resolved) are excluded.
type NewThread struct {
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	Tags       []string   `json:"tags,omitempty"`
	Type       ThreadType `json:"type"`
	UnitID     string     `json:"unit_id,omitempty"`
	Category   string     `json:"category,omitempty"`
	Visibility string     `json:"visibility,omitempty"`
}

// ContentType tags a stored content item
type ContentType string

const (
	ContentNote     ContentType = "note"
	ContentLink     ContentType = "link"
	ContentVideo    ContentType = "video"
	ContentDocument ContentType = "document"
)

// Editable reports whether this content type can be edited from the client.
// Documents are managed elsewhere and are read-only here.
func (t ContentType) Editable() bool {
	switch t {
	case ContentNote, ContentLink, ContentVideo:
		return true
	}
	return false
}

// ContentItem represents a single piece of stored educational material
type ContentItem struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	Body      string      `json:"body"`
	Version   int         `json:"version"`
	CreatedAt time.Time   `json:"created_at"`
}

// SortKey selects the thread list ordering
type SortKey string

const (
	SortRecent  SortKey = "recent"  // most recently updated first
	SortReplies SortKey = "replies" // most replies first
	SortCreated SortKey = "created" // newest first
)

// ThreadStats holds counts derived from a thread list
type ThreadStats struct {
	Total     int `json:"total"`
	Resolved  int `json:"resolved"`
	Open      int `json:"open"`
	Classroom int `json:"classroom"`
	Generic   int `json:"generic"`
}
