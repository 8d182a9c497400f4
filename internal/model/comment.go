package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID       string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PostID   string  `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID   string  `gorm:"type:uuid;not null;index" json:"user_id"`
	ParentID *string `gorm:"type:uuid;column:parent_comment_id;index" json:"parent_comment_id,omitempty"` // null for root comments
	Content  string  `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Post    Post      `gorm:"foreignKey:PostID;references:ID" json:"post,omitempty"`
	User    User      `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Parent  *Comment  `gorm:"foreignKey:ParentID;references:ID" json:"parent,omitempty"`
	Replies []Comment `gorm:"foreignKey:ParentID;references:ID" json:"replies,omitempty"`
}

// BeforeCreate hook to generate UUID
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Comment) TableName() string {
	return "comments"
}
