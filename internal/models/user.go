package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User roles. Anything other than RoleAppUser is privileged.
const (
	RoleAppUser    = "appUser"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
)

// IsPrivilegedRole reports whether role may moderate content and see
// inactive entities.
func IsPrivilegedRole(role string) bool {
	return role != "" && role != RoleAppUser
}

// Links is a JSON array column of external channel links.
type Links []string

// Value implements driver.Valuer.
func (l Links) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *Links) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("links: unsupported source type %T", src)
	}
	return json.Unmarshal(raw, (*[]string)(l))
}

// User represents a user record in the database.
// PasswordHash is never serialized.
type User struct {
	ID                 int64     `json:"id" db:"id"`
	Name               string    `json:"name" db:"name"`
	Email              string    `json:"email" db:"email"`
	PasswordHash       string    `json:"-" db:"password_hash"`
	Phone              string    `json:"phone" db:"phone"`
	Gender             *string   `json:"gender" db:"gender"`
	About              *string   `json:"about" db:"about"`
	UserImage          *string   `json:"user_image" db:"user_image"`
	ChannelName        *string   `json:"channel_name" db:"channel_name"`
	ChannelDescription *string   `json:"channel_description" db:"channel_description"`
	ChannelMediaLinks  Links     `json:"channel_media_links" db:"channel_media_links"`
	Role               string    `json:"user_role" db:"user_role"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// HasChannel reports whether the user already created a channel.
func (u *User) HasChannel() bool {
	return u.ChannelName != nil && *u.ChannelName != ""
}

// ProfileUpdate carries the mutable profile fields. Nil fields are left as is.
type ProfileUpdate struct {
	Name   *string
	Phone  *string
	Gender *string
	About  *string
}

// Channel carries a user's channel metadata.
type Channel struct {
	Name        string
	Description *string
	MediaLinks  Links
}
