package domain

import "time"

// Weekday день недели в соглашении платформы: Пн=0 .. Вс=6.
// Это единственное место, где выполняется конвертация из time.Weekday (Вс=0) —
// расхождение индексаций здесь исторически было источником ошибок в подсчете
// повторений абонемента.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayOf возвращает день недели даты в соглашении Пн=0..Вс=6
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday: Sunday=0 .. Saturday=6
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// Valid true для индексов 0..6
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	names := [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	if !w.Valid() {
		return "invalid"
	}
	return names[w]
}
