package models

import "time"

// Category statuses. Inactive is a soft delete.
const (
	CategoryInactive = 0
	CategoryActive   = 1
)

// Category represents a media category record.
type Category struct {
	ID        int64     `json:"category_id" db:"category_id"`
	Name      string    `json:"category_name" db:"category_name"`
	Image     *string   `json:"category_image" db:"category_image"`
	Status    int       `json:"category_status" db:"category_status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CategoryUpdate carries the mutable category fields. Nil fields are left as is.
type CategoryUpdate struct {
	Name   *string
	Image  *string
	Status *int
}
