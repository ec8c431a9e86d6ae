package attendance

import "errors"

var (
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrAlreadyCheckedIn     = errors.New("already checked in today")
	ErrAlreadyCheckedOut    = errors.New("already checked out today")
	ErrNotCheckedIn         = errors.New("not checked in today")
	ErrCheckInWindowClosed  = errors.New("check-in window has closed")
	ErrCheckOutWindowClosed = errors.New("outside the check-out window")
	ErrInvalidStatus        = errors.New("invalid attendance status")
)
