package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"7d", 7 * day},
		{"4w", 28 * day},
		{"3m", 90 * day},
		{" 1d ", day},
		{"0d", 0},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "7", "d", "7h", "-1d", "1.5w", "7dd"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}
