package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid morning", input: "09:00"},
		{name: "valid evening", input: "23:00"},
		{name: "midnight", input: "00:00"},
		{name: "no leading zero", input: "9:00", wantErr: true},
		{name: "seconds not allowed", input: "09:00:00", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_Validate(t *testing.T) {
	assert.NoError(t, TimeString("09:00").Validate())
	assert.Error(t, TimeString("9:00").Validate())
	assert.Error(t, TimeString("junk").Validate())
}

func TestTimeString_Comparisons(t *testing.T) {
	a := TimeString("10:00")
	b := TimeString("11:00")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
	assert.False(t, a.IsAfter(a))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:30")

	shifted, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), shifted)

	_, err = ts.AddMinutes(14 * 60)
	assert.Error(t, err, "crossing midnight must fail")
}

func TestTimeString_AddHours(t *testing.T) {
	ts := TimeString("18:00")

	end, err := ts.AddHours(1)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), end)
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2024, 6, 10, 14, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(moment))
}
