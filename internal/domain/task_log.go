package domain

import "time"

type TaskLog struct {
	ID         int64     `db:"id" json:"id"`
	Issue      string    `db:"issue" json:"issue"`
	ProjectID  int64     `db:"project_id" json:"projectId"`
	IsResolved bool      `db:"is_resolved" json:"isResolved"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

type TaskLogListFilter struct {
	ProjectID *int64
	Resolved  *bool
}
