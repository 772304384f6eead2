package formulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveMonthRequest_ValidateAcceptsOverflowEssais(t *testing.T) {
	t.Parallel()

	// Six trials against a plan of four: the planned count is a UI guide,
	// so the payload is valid and completion runs past 100%.
	req := SaveMonthRequest{
		MonthlyTarget: 80,
		Formulas: []FormulaInput{
			{
				Name:          "F-12",
				Ingredients:   []string{"resin", "hardener"},
				MaxEssais:     4,
				TargetPercent: 90,
				Essais:        []string{"passed", "passed", "failed", "passed", "failed", "passed"},
			},
		},
	}

	require.NoError(t, req.Validate())

	formula, err := req.Formulas[0].ToDomain()
	require.NoError(t, err)
	assert.Len(t, formula.Essais, 6)
	assert.Equal(t, 4, formula.MaxEssais)
}

func TestSaveMonthRequest_ValidateRejectsBadPayload(t *testing.T) {
	t.Parallel()

	req := SaveMonthRequest{
		MonthlyTarget: 80,
		Formulas: []FormulaInput{
			{
				Name:        "",
				Ingredients: []string{"resin", "Resin"},
				MaxEssais:   0,
				Essais:      []string{"maybe"},
			},
		},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
	assert.Contains(t, err.Error(), "ingredients")
	assert.Contains(t, err.Error(), "essais[0]")
}
