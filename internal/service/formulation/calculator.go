package formulation

import (
	"math"

	"github.com/opsboard/kpi-backend-go/internal/domain/formulation"
)

// successWeight and completionWeight blend how well trials went with how far
// the trial campaign has progressed.
const (
	successWeight    = 0.7
	completionWeight = 0.3
)

// Calculator scores formulation trial campaigns.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// FormulaScore computes one formula's KPI. The completion rate is left
// arithmetically uncapped: the trial cap is enforced where trials are
// recorded, and a formula that somehow exceeds it reads as >100% complete
// rather than being silently clamped.
func (c *Calculator) FormulaScore(f formulation.Formula) formulation.FormulaScore {
	score := formulation.FormulaScore{
		Name:   f.Name,
		Essais: len(f.Essais),
	}

	for _, trial := range f.Essais {
		if trial.Result == formulation.ResultPassed {
			score.Passed++
		}
	}

	if score.Essais > 0 {
		score.SuccessRate = round(float64(score.Passed) / float64(score.Essais) * 100)
	}
	if f.MaxEssais > 0 {
		score.CompletionRate = float64(score.Essais) / float64(f.MaxEssais) * 100
	}

	score.KPIValue = round(float64(score.SuccessRate)*successWeight + score.CompletionRate*completionWeight)
	return score
}

// GlobalScore is the trial-weighted mean of every formula's KPI. A formula
// with no trials still counts with weight 1, so untested formulas keep a
// voice and an all-untested set divides by the formula count instead of
// zero.
func (c *Calculator) GlobalScore(formulas []formulation.Formula) (int, []formulation.FormulaScore) {
	scores := make([]formulation.FormulaScore, 0, len(formulas))

	weightedSum, weightTotal := 0.0, 0.0
	for _, f := range formulas {
		score := c.FormulaScore(f)
		scores = append(scores, score)

		weight := float64(score.Essais)
		if weight < 1 {
			weight = 1
		}
		weightedSum += float64(score.KPIValue) * weight
		weightTotal += weight
	}

	if weightTotal == 0 {
		return 0, scores
	}
	return round(weightedSum / weightTotal), scores
}

func round(x float64) int {
	return int(math.Round(x))
}
