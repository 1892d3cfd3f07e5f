package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 7, 3, 9, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "08:30", "21:30", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), s)
	}

	invalid := []string{"", "8:30", "08:3", "24:00", "12:60", "ab:cd", "08-30", "08:30:00"}
	for _, s := range invalid {
		assert.Error(t, TimeString(s).Validate(), s)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = TimeString("25:00").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("forward within day", func(t *testing.T) {
		got, err := TimeString("08:30").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:00"), got)
	})

	t.Run("backward within day", func(t *testing.T) {
		got, err := TimeString("08:00").AddMinutes(-30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("07:30"), got)
	})

	t.Run("no wraparound past midnight", func(t *testing.T) {
		_, err := TimeString("23:30").AddMinutes(30)
		assert.Error(t, err)
	})

	t.Run("no wraparound before midnight", func(t *testing.T) {
		_, err := TimeString("00:00").AddMinutes(-30)
		assert.Error(t, err)
	})
}

func TestTimeString_DiffMinutes(t *testing.T) {
	diff, err := TimeString("08:00").DiffMinutes("09:30")
	require.NoError(t, err)
	assert.Equal(t, 90, diff)

	diff, err = TimeString("09:30").DiffMinutes("08:00")
	require.NoError(t, err)
	assert.Equal(t, -90, diff)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("08:00").IsBefore("08:30"))
	assert.False(t, TimeString("08:30").IsBefore("08:30"))
	assert.True(t, TimeString("21:30").IsAfter("08:00"))
}
