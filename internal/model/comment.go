package model

import "time"

// Comment belongs to exactly one task. AuthorID becomes nil if the author
// is removed; the comment itself is kept.
type Comment struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	AuthorID  *int64    `json:"author_id"`
	Content   string    `json:"content"`
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
}
