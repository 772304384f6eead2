package efficiency

import "errors"

// Efficiency domain errors
var (
	ErrMonthNotFound = errors.New("no efficiency snapshot for this month")
)
