package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID   string `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
}

// BeforeCreate hook to generate UUID
func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Tag) TableName() string {
	return "tags"
}

// PostTag joins posts and tags (many-to-many).
type PostTag struct {
	ID        string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PostID    string    `gorm:"type:uuid;not null;index:idx_post_tag,unique" json:"post_id"`
	TagID     string    `gorm:"type:uuid;not null;index:idx_post_tag,unique" json:"tag_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Post Post `gorm:"foreignKey:PostID;references:ID" json:"post,omitempty"`
	Tag  Tag  `gorm:"foreignKey:TagID;references:ID" json:"tag,omitempty"`
}

// BeforeCreate hook to generate UUID
func (pt *PostTag) BeforeCreate(tx *gorm.DB) error {
	if pt.ID == "" {
		pt.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (PostTag) TableName() string {
	return "post_tags"
}
