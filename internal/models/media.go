package models

import "time"

// Media moderation statuses.
const (
	MediaHidden   = 0
	MediaApproved = 1
	MediaPending  = 2
)

// IsValidMediaStatus reports whether s is a known moderation status.
func IsValidMediaStatus(s int) bool {
	return s == MediaHidden || s == MediaApproved || s == MediaPending
}

// Media represents an uploaded media record.
// CategoryName and UploaderName are filled by read queries (joined at read time).
type Media struct {
	ID           int64      `json:"media_id" db:"media_id"`
	UserID       int64      `json:"user_id" db:"user_id"`
	Title        string     `json:"title" db:"title"`
	Description  *string    `json:"description" db:"description"`
	CategoryID   *int64     `json:"category_id" db:"category_id"`
	Banner       *string    `json:"banner" db:"banner"`
	Audio        *string    `json:"audio" db:"audio"`
	Duration     *string    `json:"duration" db:"duration"`
	Language     *string    `json:"language" db:"language"`
	Tags         *string    `json:"tags" db:"tags"`
	Cast         *string    `json:"cast" db:"cast"`
	Crew         *string    `json:"crew" db:"crew"`
	ReleaseDate  *time.Time `json:"release_date" db:"release_date"`
	Rating       int        `json:"rating" db:"rating"`
	Listener     int        `json:"listener" db:"listener"`
	Status       int        `json:"media_status" db:"media_status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	CategoryName *string    `json:"category_name,omitempty" db:"category_name"`
	UploaderName *string    `json:"uploader_name,omitempty" db:"uploader_name"`
}

// MediaFilter selects a media listing.
type MediaFilter struct {
	CategoryID *int64
	IncludeAll bool
}

// DashboardCounts summarizes the platform for privileged users.
type DashboardCounts struct {
	AppUsers         int `json:"app_users" db:"app_users"`
	ActiveCategories int `json:"active_categories" db:"active_categories"`
	Media            int `json:"media" db:"media"`
	PendingMedia     int `json:"pending_media" db:"pending_media"`
}
