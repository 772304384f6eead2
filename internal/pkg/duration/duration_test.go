package duration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ParseMinutes(""))
	assert.Equal(t, 0, ParseMinutes("   "))
	assert.Equal(t, 0, ParseMinutes("00:00"))
	assert.Equal(t, 90, ParseMinutes("01:30"))
	assert.Equal(t, 480, ParseMinutes("08:00"))
	assert.Equal(t, 1439, ParseMinutes("23:59"))

	// Malformed input falls back to zero rather than corrupting totals.
	assert.Equal(t, 0, ParseMinutes("garbage"))
	assert.Equal(t, 0, ParseMinutes("08"))
	assert.Equal(t, 0, ParseMinutes("08:xx"))
}

func TestParseMinutesStrict(t *testing.T) {
	t.Parallel()

	m, err := ParseMinutesStrict("07:45")
	assert.NoError(t, err)
	assert.Equal(t, 465, m)

	_, err = ParseMinutesStrict("7h45")
	assert.Error(t, err)

	_, err = ParseMinutesStrict("-1:30")
	assert.Error(t, err)

	// Blank is a legal "no duration recorded".
	m, err = ParseMinutesStrict("")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestElapsed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 510, Elapsed("08:00", "16:30"))
	assert.Equal(t, 0, Elapsed("08:00", "08:00"))

	// Overnight shifts are not handled here; the negative result is visible
	// to callers, which treat it as a non-worked day.
	assert.Equal(t, -960, Elapsed("22:00", "06:00"))
}

func TestFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"00:00", "00:59", "01:00", "08:05", "23:59"} {
		assert.Equal(t, s, Format(ParseMinutes(s)))
	}

	assert.Equal(t, "00:00", Format(-15))
	assert.Equal(t, "25:00", Format(1500))
}
