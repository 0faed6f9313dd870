package goal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/goal-engine/goal"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input   string
		want    goal.Month
		wantErr bool
	}{
		{input: "01-2025", want: goal.NewMonth(2025, time.January)},
		{input: "12-1999", want: goal.NewMonth(1999, time.December)},
		{input: "7-2025", want: goal.NewMonth(2025, time.July)},
		{input: " 03-2026 ", want: goal.NewMonth(2026, time.March)},
		{input: "2025-01", wantErr: true},
		{input: "13-2025", wantErr: true},
		{input: "00-2025", wantErr: true},
		{input: "01/2025", wantErr: true},
		{input: "01-25", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := goal.ParseMonth(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, goal.ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonth_Key(t *testing.T) {
	assert.Equal(t, "07-2025", goal.NewMonth(2025, time.July).Key())
	assert.Equal(t, "12-2025", goal.MustParseMonth("12-2025").String())
}

func TestMonth_AddMonths(t *testing.T) {
	jan := goal.MustParseMonth("01-2025")

	assert.Equal(t, "02-2025", jan.AddMonths(1).Key())
	assert.Equal(t, "01-2026", jan.AddMonths(12).Key())
	assert.Equal(t, "12-2024", jan.AddMonths(-1).Key())
	assert.Equal(t, "01-2030", jan.AddYears(5).Key())
}

func TestMonth_Comparison(t *testing.T) {
	a := goal.MustParseMonth("11-2025")
	b := goal.MustParseMonth("02-2026")

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(goal.NewMonth(2025, time.November)))
	assert.Equal(t, 3, goal.MonthsBetween(a, b))
	assert.Equal(t, -3, goal.MonthsBetween(b, a))
}

func TestCanonicalKey(t *testing.T) {
	key, err := goal.CanonicalKey("7-2025")
	require.NoError(t, err)
	assert.Equal(t, "07-2025", key)

	_, err = goal.CanonicalKey("July 2025")
	assert.ErrorIs(t, err, goal.ErrInvalidDateFormat)
}

func TestMustParseMonth_Panics(t *testing.T) {
	assert.Panics(t, func() { goal.MustParseMonth("2025-07") })
}
