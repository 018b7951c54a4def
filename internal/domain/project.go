package domain

import "time"

type Project struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Tag         string    `db:"tag" json:"tag"`
	UserID      int64     `db:"user_id" json:"userId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// ProjectListFilter narrows GET /projects. Zero values mean "no filter".
type ProjectListFilter struct {
	UserID *int64
	Tags   []string
}
