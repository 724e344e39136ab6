package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hrkit/leave_management_app/internal/core/domain"
)

func TestDaysBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{
			name:  "single day",
			start: day(2),
			end:   day(2),
			want:  1,
		},
		{
			name:  "full week",
			start: day(2),
			end:   day(8),
			want:  7,
		},
		{
			name:  "month boundary",
			start: time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC),
			end:   day(2),
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DaysBetween(tt.start, tt.end))
		})
	}
}

func TestLeaveStatus_Terminal(t *testing.T) {
	tests := []struct {
		status domain.LeaveStatus
		want   bool
	}{
		{domain.StatusPending, false},
		{domain.StatusApproved, true},
		{domain.StatusRejected, true},
		{domain.StatusCancelled, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Terminal())
		})
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, domain.RoleEmployee.Valid())
	assert.True(t, domain.RoleManager.Valid())
	assert.True(t, domain.RoleAdmin.Valid())
	assert.False(t, domain.Role("SUPERVISOR").Valid())
	assert.False(t, domain.Role("").Valid())
}
