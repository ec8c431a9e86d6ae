package attendance

import (
	"time"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/attendance"
)

// Daily cutoffs in minutes from local midnight.
const (
	earlyCutoff   = 8*60 + 30  // 08:30
	checkInClose  = 9 * 60     // 09:00
	checkOutOpen  = 16*60 + 30 // 16:30
	checkOutClose = 17*60 + 30 // 17:30
)

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// CanCheckIn reports whether the check-in window is still open at t.
// The window closes at 09:00 sharp.
func CanCheckIn(t time.Time) bool {
	return minuteOfDay(t) < checkInClose
}

// Classify maps a permitted check-in time to its stored status.
// Arrivals before 08:30 are early, arrivals in [08:30, 09:00) are
// on time and stored as present. Later arrivals never reach this
// function because CanCheckIn already refused them, so a late
// status cannot be produced by checking in.
func Classify(t time.Time) string {
	if minuteOfDay(t) < earlyCutoff {
		return attendance.StatusEarly
	}
	return attendance.StatusPresent
}

// PointsFor returns the points awarded for a check-in status.
func PointsFor(status string, earlyPoints, onTimePoints int) int {
	switch status {
	case attendance.StatusEarly:
		return earlyPoints
	case attendance.StatusPresent:
		return onTimePoints
	default:
		return 0
	}
}

// CanCheckOut reports whether t falls inside the check-out window,
// 16:30 through 17:30 inclusive on both ends.
func CanCheckOut(t time.Time) bool {
	m := minuteOfDay(t)
	return m >= checkOutOpen && m <= checkOutClose
}
