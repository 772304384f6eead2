package formulation

import (
	"fmt"
	"strings"

	"github.com/opsboard/kpi-backend-go/internal/pkg/validator"
)

// TrialResult is the outcome of one formulation trial ("essai").
type TrialResult string

const (
	ResultPassed TrialResult = "passed"
	ResultFailed TrialResult = "failed"
)

func ParseTrialResult(s string) (TrialResult, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "passed", "pass", "ok":
		return ResultPassed, nil
	case "failed", "fail", "ko":
		return ResultFailed, nil
	}
	return "", fmt.Errorf("unknown trial result %q", s)
}

// Trial is one pass/fail test run of a formula.
type Trial struct {
	Result TrialResult `json:"result"`
}

// Formula is an experimental product formulation under trial. The trial cap
// (MaxEssais) is enforced where trials are recorded, not here; the scorer
// deliberately leaves completion rates uncapped.
type Formula struct {
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	MaxEssais     int      `json:"max_essais"`
	TargetPercent int      `json:"target_percent"`
	Essais        []Trial  `json:"essais"`
}

// FormulaInput is the wire shape of one formula with its trial history.
type FormulaInput struct {
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	MaxEssais     int      `json:"max_essais"`
	TargetPercent int      `json:"target_percent"`
	Essais        []string `json:"essais"`
}

// SaveMonthRequest replaces a team's formulation snapshot for one month.
type SaveMonthRequest struct {
	MonthlyTarget int            `json:"monthly_target"`
	Formulas      []FormulaInput `json:"formulas"`
}

func (r *SaveMonthRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlyTarget < 0 || r.MonthlyTarget > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_target",
			Message: "monthly_target must be between 0 and 100",
		})
	}

	for i, f := range r.Formulas {
		field := fmt.Sprintf("formulas[%d]", i)

		if validator.IsEmpty(f.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".name",
				Message: "name is required",
			})
		}
		if len(f.Ingredients) == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".ingredients",
				Message: "at least one ingredient is required",
			})
		} else if validator.HasDuplicates(f.Ingredients) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".ingredients",
				Message: "ingredients must not repeat",
			})
		}
		if f.MaxEssais <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".max_essais",
				Message: "max_essais must be a positive integer",
			})
		}
		if f.TargetPercent < 0 || f.TargetPercent > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".target_percent",
				Message: "target_percent must be between 0 and 100",
			})
		}
		// Trial count is not capped against max_essais here: the planned
		// count is a UI guide and completion above 100% is meaningful.
		for j, result := range f.Essais {
			if _, err := ParseTrialResult(result); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("%s.essais[%d]", field, j),
					Message: err.Error(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToDomain converts a validated FormulaInput into a Formula.
func (f *FormulaInput) ToDomain() (Formula, error) {
	essais := make([]Trial, 0, len(f.Essais))
	for _, result := range f.Essais {
		parsed, err := ParseTrialResult(result)
		if err != nil {
			return Formula{}, err
		}
		essais = append(essais, Trial{Result: parsed})
	}
	return Formula{
		Name:          f.Name,
		Ingredients:   f.Ingredients,
		MaxEssais:     f.MaxEssais,
		TargetPercent: f.TargetPercent,
		Essais:        essais,
	}, nil
}

// FormulaScore is one formula's computed KPI breakdown.
type FormulaScore struct {
	Name           string  `json:"name"`
	Essais         int     `json:"essais"`
	Passed         int     `json:"passed"`
	SuccessRate    int     `json:"success_rate"`
	CompletionRate float64 `json:"completion_rate"`
	KPIValue       int     `json:"kpi_value"`
}

// MonthStatsResponse is the computed formulation view returned by GET/PUT.
type MonthStatsResponse struct {
	MonthKey      string         `json:"month_key"`
	KPIValue      int            `json:"kpi_value"`
	MonthlyTarget int            `json:"monthly_target"`
	Formulas      []FormulaScore `json:"formulas"`
}
