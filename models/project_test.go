package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectCanSubmit(t *testing.T) {
	submittable := map[ProjectStatus]bool{
		ProjectStatusPreSubmission:   true,
		ProjectStatusNeedsAdjustment: true,
		ProjectStatusSubmitted:       false,
		ProjectStatusApproved:        false,
		ProjectStatusRejected:        false,
		ProjectStatusIncubated:       false,
		ProjectStatusInactive:        false,
		ProjectStatusDisengaged:      false,
	}

	for status, want := range submittable {
		p := Project{Status: status}
		assert.Equal(t, want, p.CanSubmit(), "status %q", status)
	}
}

func TestProjectCanDisengage(t *testing.T) {
	for _, status := range []ProjectStatus{
		ProjectStatusIncubated,
		ProjectStatusApproved,
		ProjectStatusSubmitted,
		ProjectStatusPreSubmission,
		ProjectStatusNeedsAdjustment,
		ProjectStatusInactive,
	} {
		p := Project{Status: status}
		assert.True(t, p.CanDisengage(), "status %q", status)
	}

	for _, status := range []ProjectStatus{
		ProjectStatusRejected,
		ProjectStatusDisengaged,
	} {
		p := Project{Status: status}
		assert.False(t, p.CanDisengage(), "status %q", status)
	}
}

func TestProjectIsIncubated(t *testing.T) {
	assert.True(t, (&Project{Status: ProjectStatusIncubated}).IsIncubated())
	assert.False(t, (&Project{Status: ProjectStatusApproved}).IsIncubated())
}
