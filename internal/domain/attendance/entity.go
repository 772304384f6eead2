package attendance

import "time"

// Schedule is the shift an employee is rostered on for a given day.
type Schedule string

const (
	ScheduleDaytime Schedule = "daytime"
	ScheduleSAM     Schedule = "sam"
	ScheduleNight   Schedule = "night"
)

func (s Schedule) Valid() bool {
	switch s {
	case ScheduleDaytime, ScheduleSAM, ScheduleNight:
		return true
	}
	return false
}

// Motif is the stated reason for an attendance exception. Empty means the
// employee attended normally.
type Motif string

const (
	MotifNone         Motif = ""
	MotifConge        Motif = "conge"
	MotifMaladie      Motif = "maladie"
	MotifMaladieP     Motif = "maladie_p"
	MotifAutorisation Motif = "autorisation"
	MotifAbsence      Motif = "absence"
)

func (m Motif) Valid() bool {
	switch m {
	case MotifNone, MotifConge, MotifMaladie, MotifMaladieP, MotifAutorisation, MotifAbsence:
		return true
	}
	return false
}

// IsAbsenceLike reports whether the motif marks the day as not worked for
// attendance-rate purposes (the leave, sickness and unexcused-absence
// families).
func (m Motif) IsAbsenceLike() bool {
	switch m {
	case MotifConge, MotifMaladie, MotifMaladieP, MotifAbsence:
		return true
	}
	return false
}

// IsMaladie groups plain sickness with paid sickness ("Maladie P").
func (m Motif) IsMaladie() bool {
	return m == MotifMaladie || m == MotifMaladieP
}

// PresencePlaceholder is the fixed presence value stored on motif days.
const PresencePlaceholder = "00:00"

// Record is one employee's attendance for one calendar date. When Motif is
// set, ActualEntry, ActualExit and Retard are nil and Presence holds
// PresencePlaceholder; lateness is only meaningful when the employee
// actually clocked in.
type Record struct {
	Date        time.Time `json:"date"`
	Schedule    Schedule  `json:"schedule"`
	ActualEntry *string   `json:"actual_entry,omitempty"`
	ActualExit  *string   `json:"actual_exit,omitempty"`
	Motif       Motif     `json:"motif,omitempty"`
	Retard      *string   `json:"retard,omitempty"`
	Presence    string    `json:"presence"`
}
