package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("name", "Meadowbrook"))
	assert.Error(t, Required("name", ""))
	assert.Error(t, Required("name", "   "))
}

func TestPositiveQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2.5", 2.5, false},
		{" 10 ", 10, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := PositiveQuantity(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFutureDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

	got, err := FutureDate("2026-09-01", now)
	require.NoError(t, err, "today must be allowed")
	assert.Equal(t, "2026-09-01", got)

	_, err = FutureDate("2026-08-31", now)
	assert.Error(t, err, "yesterday must be rejected")

	got, err = FutureDate("2026-12-24", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-12-24", got)

	_, err = FutureDate("24.12.2026", now)
	assert.Error(t, err, "wrong layout must be rejected")
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("ada@farm.test"))
	assert.Error(t, Email("adafarm.test"))
	assert.Error(t, Email("@farm.test"))
	assert.Error(t, Email("ada@"))
	assert.Error(t, Email("ada@farmtest"))
}
