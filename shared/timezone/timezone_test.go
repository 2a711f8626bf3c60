package timezone_test

import (
	"testing"
	"time"

	"infopage/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	timezone.Init("Europe/Helsinki")
	t.Cleanup(func() { timezone.Init("UTC") })

	assert.Equal(t, "Europe/Helsinki", timezone.GetLocation().String())
	assert.Equal(t, "Europe/Helsinki", timezone.Now().Location().String())

	timezone.Init("Not/AZone")
	assert.Equal(t, time.Local, timezone.GetLocation())
}

func TestFromWall(t *testing.T) {
	timezone.Init("Europe/Helsinki")
	t.Cleanup(func() { timezone.Init("UTC") })

	stored := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	got := timezone.FromWall(stored)

	assert.Equal(t, 9, got.Hour())
	assert.Equal(t, "Europe/Helsinki", got.Location().String())
	assert.Equal(t, 6, got.UTC().Hour())
}

func TestParse(t *testing.T) {
	timezone.Init("UTC")

	parsed, err := timezone.Parse("2006-01-02 15:04", "2024-05-01 09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), parsed)
}

func TestStrftime(t *testing.T) {
	timezone.Init("UTC")

	at := time.Date(2024, 5, 1, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{
			name:     "default clock",
			pattern:  "%H:%M",
			expected: "14:07",
		},
		{
			name:     "twelve hour clock",
			pattern:  "%I:%M %p",
			expected: "02:07 PM",
		},
		{
			name:     "date",
			pattern:  "%a %d.%m.%Y",
			expected: "Wed 01.05.2024",
		},
		{
			name:     "literal percent",
			pattern:  "100%% %S",
			expected: "100% 09",
		},
		{
			name:     "literal text only",
			pattern:  "Uhr",
			expected: "Uhr",
		},
		{
			name:     "unknown directive is returned verbatim",
			pattern:  "%H %Q",
			expected: "%H %Q",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Strftime(at, tt.pattern))
		})
	}
}

func TestValidStrftime(t *testing.T) {
	tests := []struct {
		pattern string
		valid   bool
	}{
		{pattern: "%H:%M", valid: true},
		{pattern: "%a %e %B", valid: true},
		{pattern: "Uhr", valid: true},
		{pattern: "", valid: true},
		{pattern: "%Q", valid: false},
		{pattern: "%H:%M %", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.valid, timezone.ValidStrftime(tt.pattern))
		})
	}
}
