package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMotif(t *testing.T) {
	t.Parallel()

	cases := map[string]Motif{
		"":             MotifNone,
		"conge":        MotifConge,
		"Congé":        MotifConge,
		"maladie":      MotifMaladie,
		"Maladie P":    MotifMaladieP,
		"maladie_p":    MotifMaladieP,
		"autorisation": MotifAutorisation,
		"absence":      MotifAbsence,
	}
	for input, want := range cases {
		got, err := ParseMotif(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseMotif_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseMotif("vacances")
	assert.ErrorIs(t, err, ErrUnknownMotif)
}
