package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Пиннинг конвертации time.Weekday (Вс=0) -> Weekday (Пн=0).
// Проверяем всю неделю по известному календарю: 2024-01-01 — понедельник.
func TestWeekdayOf(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{date: "2024-01-01", want: Monday},
		{date: "2024-01-02", want: Tuesday},
		{date: "2024-01-03", want: Wednesday},
		{date: "2024-01-04", want: Thursday},
		{date: "2024-01-05", want: Friday},
		{date: "2024-01-06", want: Saturday},
		{date: "2024-01-07", want: Sunday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			parsed, err := time.Parse(DateFormat, tt.date)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, WeekdayOf(parsed))
		})
	}
}

func TestWeekday_Valid(t *testing.T) {
	assert.True(t, Monday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Weekday(7).Valid())
	assert.False(t, Weekday(-1).Valid())
}
