package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username  string     `gorm:"type:varchar(128);not null;uniqueIndex" json:"username"`
	Email     string     `gorm:"type:varchar(128);not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"type:varchar(128);not null" json:"-"`
	Firstname *string    `gorm:"type:varchar(128)" json:"firstname,omitempty"`
	Lastname  *string    `gorm:"type:varchar(128)" json:"lastname,omitempty"`
	Birthdate *time.Time `gorm:"type:date" json:"birthdate,omitempty"`
	Phone     *string    `gorm:"type:varchar(15)" json:"phone,omitempty"`
	Gender    *string    `gorm:"type:varchar(10)" json:"gender,omitempty"` // male, female, other
	Avatar    *string    `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	Bio       *string    `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// Gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// IsValidGender reports whether g is an allowed gender value.
func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}
