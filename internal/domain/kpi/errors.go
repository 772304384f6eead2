package kpi

import "errors"

// KPI domain errors
var (
	ErrInvalidCategory = errors.New("unknown kpi category")
	ErrInvalidMonthKey = errors.New("invalid month key")
)
