package attendance

import "errors"

// Attendance domain errors
var (
	ErrMonthNotFound = errors.New("no attendance snapshot for this month")
	ErrInvalidMonth  = errors.New("month must be YYYY-MM or YYYY-MM-DD")
	ErrUnknownMotif  = errors.New("unknown motif")
)
