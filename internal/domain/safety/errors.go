package safety

import "errors"

// Safety domain errors
var (
	ErrMonthNotFound   = errors.New("no safety snapshot for this month")
	ErrUnknownSeverity = errors.New("unknown incident severity")
)
