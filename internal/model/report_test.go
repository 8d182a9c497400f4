package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionReportStatus(t *testing.T) {
	// Pending moves to either terminal state
	assert.True(t, CanTransitionReportStatus(ReportStatusPending, ReportStatusResolved))
	assert.True(t, CanTransitionReportStatus(ReportStatusPending, ReportStatusRejected))

	// Terminal states never move
	assert.False(t, CanTransitionReportStatus(ReportStatusResolved, ReportStatusPending))
	assert.False(t, CanTransitionReportStatus(ReportStatusResolved, ReportStatusRejected))
	assert.False(t, CanTransitionReportStatus(ReportStatusRejected, ReportStatusPending))
	assert.False(t, CanTransitionReportStatus(ReportStatusRejected, ReportStatusResolved))

	assert.False(t, CanTransitionReportStatus(ReportStatusPending, ReportStatusPending))
}

func TestIsValidReportStatus(t *testing.T) {
	assert.True(t, IsValidReportStatus(ReportStatusPending))
	assert.True(t, IsValidReportStatus(ReportStatusResolved))
	assert.True(t, IsValidReportStatus(ReportStatusRejected))
	assert.False(t, IsValidReportStatus("escalated"))
	assert.False(t, IsValidReportStatus(""))
}
