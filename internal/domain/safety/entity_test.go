package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	cases := map[string]Severity{
		"minor":    SeverityMinor,
		"Moderate": SeverityModerate,
		" major ":  SeverityMajor,
		"CRITICAL": SeverityCritical,
	}
	for input, want := range cases {
		got, err := ParseSeverity(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseSeverity_Unknown(t *testing.T) {
	t.Parallel()

	_, err := ParseSeverity("catastrophic")
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}
