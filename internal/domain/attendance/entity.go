package attendance

import "time"

// Stored status values. "early" and "present" are assigned at check-in
// depending on the arrival time. "late" can only be stored through the
// admin bulk-mark operation.
const (
	StatusEarly   = "early"
	StatusPresent = "present"
	StatusLate    = "late"
)

// Day states derived from a record's check-in/check-out columns. They
// are never stored.
const (
	DayStateNotMarked  = "not_marked"
	DayStateClockedIn  = "clocked_in"
	DayStateClockedOut = "clocked_out"
)

type Attendance struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	Date         time.Time  `json:"date"`
	Status       string     `json:"status"`
	CheckIn      *time.Time `json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	IsEarly      bool       `json:"is_early"`
	IsOnTime     bool       `json:"is_on_time"`
	PointsEarned int        `json:"points_earned"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Joined fields for admin listings.
	EmployeeName *string `json:"employee_name,omitempty"`
}

// DayState derives the progression state from the record's timestamps.
// A nil record means the day has not been marked at all.
func (a *Attendance) DayState() string {
	if a == nil || a.CheckIn == nil {
		return DayStateNotMarked
	}
	if a.CheckOut == nil {
		return DayStateClockedIn
	}
	return DayStateClockedOut
}
