package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 16, hour, minute, 0, 0, time.UTC)
}

func TestCanCheckIn(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want bool
	}{
		{"midnight", at(0, 0), true},
		{"early morning", at(7, 45), true},
		{"just before early cutoff", at(8, 29), true},
		{"early cutoff itself", at(8, 30), true},
		{"last permitted minute", at(8, 59), true},
		{"window close", at(9, 0), false},
		{"mid afternoon", at(15, 0), false},
		{"evening", at(21, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCheckIn(tt.time))
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{"well before early cutoff", at(6, 0), attendance.StatusEarly},
		{"8:15 arrival", at(8, 15), attendance.StatusEarly},
		{"8:29 arrival", at(8, 29), attendance.StatusEarly},
		{"8:30 arrival", at(8, 30), attendance.StatusPresent},
		{"8:59 arrival", at(8, 59), attendance.StatusPresent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.time))
		})
	}
}

// Every time the check-in window admits produces either early or
// present. The late status is unreachable through check-in.
func TestClassify_NeverLate(t *testing.T) {
	for minute := 0; minute < 24*60; minute++ {
		clock := at(minute/60, minute%60)
		if !CanCheckIn(clock) {
			continue
		}
		status := Classify(clock)
		assert.Contains(t, []string{attendance.StatusEarly, attendance.StatusPresent}, status,
			"minute %d", minute)
	}
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 5, PointsFor(attendance.StatusEarly, 5, 3))
	assert.Equal(t, 3, PointsFor(attendance.StatusPresent, 5, 3))
	assert.Equal(t, 0, PointsFor(attendance.StatusLate, 5, 3))
	assert.Equal(t, 0, PointsFor("unknown", 5, 3))
}

func TestCanCheckOut(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want bool
	}{
		{"morning", at(9, 30), false},
		{"just before window", at(16, 29), false},
		{"window opens", at(16, 30), true},
		{"five o'clock", at(17, 0), true},
		{"window close inclusive", at(17, 30), true},
		{"just after window", at(17, 31), false},
		{"late evening", at(22, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanCheckOut(tt.time))
		})
	}
}
