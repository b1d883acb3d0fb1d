package domain

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02.01.2006" // DD.MM.YYYY, как отображает платформа
)

// SubscriptionMonthOptions допустимые длительности абонемента
var SubscriptionMonthOptions = []int{1, 2, 3, 6, 12}

// IsValidSubscriptionMonths проверяет длительность абонемента
func IsValidSubscriptionMonths(months int) bool {
	for _, m := range SubscriptionMonthOptions {
		if m == months {
			return true
		}
	}
	return false
}
