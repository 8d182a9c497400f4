package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Share has no uniqueness constraint: repeat shares of the same post by the
// same user are allowed.
type Share struct {
	ID        string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;index" json:"post_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;references:ID" json:"post,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *Share) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Share) TableName() string {
	return "shares"
}
