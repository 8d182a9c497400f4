package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report targets are polymorphic (post, comment or user), so target_id
// carries no foreign key.
type Report struct {
	ID         string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TargetID   string    `gorm:"type:uuid;not null;index" json:"target_id"`
	TargetType string    `gorm:"type:varchar(20);not null" json:"target_type"` // post, comment, user
	UserID     string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason     string    `gorm:"type:varchar(255);not null" json:"reason"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending, resolved, rejected
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Reporter User `gorm:"foreignKey:UserID;references:ID" json:"reporter,omitempty"`
}

// BeforeCreate hook to generate UUID
func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (Report) TableName() string {
	return "reports"
}

// Report status constants
const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
	ReportStatusRejected = "rejected"
)

// IsValidReportStatus reports whether s is a member of the status enum.
func IsValidReportStatus(s string) bool {
	return s == ReportStatusPending || s == ReportStatusResolved || s == ReportStatusRejected
}

// CanTransitionReportStatus reports whether a report may move from one status
// to another. Only pending reports move; resolved and rejected are terminal.
func CanTransitionReportStatus(from, to string) bool {
	if from == ReportStatusPending {
		return to == ReportStatusResolved || to == ReportStatusRejected
	}
	return false
}

// ReportCounter is a denormalized per-target report count keyed by the
// composite (target_id, target_type). The key is caller-supplied, not
// generated.
type ReportCounter struct {
	TargetID   string    `gorm:"type:uuid;primary_key" json:"target_id"`
	TargetType string    `gorm:"type:varchar(20);primary_key" json:"target_type"` // post, comment, user
	Count      int64     `gorm:"not null;default:0" json:"count"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name
func (ReportCounter) TableName() string {
	return "report_counters"
}
