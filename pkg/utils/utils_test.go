package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		parsed, err := ParseDate("2023-11-10")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("10/11/2023")
		assert.Error(t, err)
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseDate("")
		assert.Error(t, err)
	})
}

func TestTruncateToDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "afternoon time is stripped",
			input:    time.Date(2023, 11, 10, 15, 42, 31, 999, time.UTC),
			expected: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "midnight is unchanged",
			input:    time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateToDay(tt.input))
		})
	}
}

func TestDaysOverdue(t *testing.T) {
	dueDate := time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dueDate  time.Time
		asOf     time.Time
		expected int
	}{
		{
			name:     "before due date",
			dueDate:  dueDate,
			asOf:     dueDate.AddDate(0, 0, -5),
			expected: 0,
		},
		{
			name:     "on due date",
			dueDate:  dueDate,
			asOf:     dueDate,
			expected: 0,
		},
		{
			name:     "one day after",
			dueDate:  dueDate,
			asOf:     dueDate.AddDate(0, 0, 1),
			expected: 1,
		},
		{
			name:     "thirty days after",
			dueDate:  dueDate,
			asOf:     dueDate.AddDate(0, 0, 30),
			expected: 30,
		},
		{
			name:     "time of day is ignored on both sides",
			dueDate:  time.Date(2023, 11, 10, 23, 0, 0, 0, time.UTC),
			asOf:     time.Date(2023, 11, 11, 1, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "same day late evening is not overdue",
			dueDate:  time.Date(2023, 11, 10, 8, 0, 0, 0, time.UTC),
			asOf:     time.Date(2023, 11, 10, 23, 59, 0, 0, time.UTC),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysOverdue(tt.dueDate, tt.asOf))
		})
	}
}
