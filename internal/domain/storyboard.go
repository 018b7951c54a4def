package domain

import "time"

type Storyboard struct {
	ID          int64     `db:"id" json:"id"`
	ProjectID   int64     `db:"project_id" json:"projectId"`
	CategoryID  int64     `db:"category_id" json:"categoryId"`
	Description string    `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

type StoryboardListFilter struct {
	ProjectID *int64
}
