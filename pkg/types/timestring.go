package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString время начала слота в формате HH:MM
// Хранится как строка, чтобы сериализация в JSON и storage совпадала с API платформы
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString валидирует строку HH:MM и возвращает TimeString.
// Требуется каноническая форма с ведущим нулем: "9:00" не пройдет, иначе
// значение никогда не совпадет с ключами матрицы и временами слотов.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil || parsed.Format(timeLayout) != s {
		return "", fmt.Errorf("invalid time string %q: want HH:MM", s)
	}
	return TimeString(s), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет, что значение в канонической форме HH:MM
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil || parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("invalid time string %q: want HH:MM", string(t))
	}
	return nil
}

func (t TimeString) parse() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// IsBefore строгое сравнение: t < other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter строгое сравнение: t > other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.parse()
	b, errB := other.parse()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время через minutes минут
// Переход через полночь не поддерживается и возвращает ошибку
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", fmt.Errorf("invalid time string %q: %v", string(t), err)
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", string(t), minutes)
	}

	return TimeString(shifted.Format(timeLayout)), nil
}

// AddHours возвращает время через hours часов
func (t TimeString) AddHours(hours int) (TimeString, error) {
	return t.AddMinutes(hours * 60)
}
