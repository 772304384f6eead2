package formulation

import "errors"

// Formulation domain errors
var (
	ErrMonthNotFound = errors.New("no formulation snapshot for this month")
)
