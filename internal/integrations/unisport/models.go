package unisport

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bronsport/unisport-gateway/internal/domain"
	"github.com/bronsport/unisport-gateway/pkg/types"
)

// FacilityResponse модель спортивного объекта от платформы
type FacilityResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	University  string `json:"university_name"`
	BookingType string `json:"booking_type"`
	// PricePerHour платформа сериализует decimal строкой
	PricePerHour string `json:"price_per_hour"`
	OpenTime     string `json:"open_time"`
	CloseTime    string `json:"close_time"`
	WorkingDays  []int  `json:"working_days"`
	MaxCapacity  int    `json:"max_capacity"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
}

// ToDomain конвертирует ответ платформы в доменную модель
func (r *FacilityResponse) ToDomain() (*domain.Facility, error) {
	price, err := strconv.ParseFloat(r.PricePerHour, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad price_per_hour %q: %v", ErrInvalidResponse, r.PricePerHour, err)
	}
	open, err := parsePlatformTime(r.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad open_time %q: %v", ErrInvalidResponse, r.OpenTime, err)
	}
	closeT, err := parsePlatformTime(r.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: bad close_time %q: %v", ErrInvalidResponse, r.CloseTime, err)
	}
	days := make([]domain.Weekday, 0, len(r.WorkingDays))
	for _, d := range r.WorkingDays {
		wd := domain.Weekday(d)
		if !wd.Valid() {
			return nil, fmt.Errorf("%w: bad working day %d", ErrInvalidResponse, d)
		}
		days = append(days, wd)
	}
	return &domain.Facility{
		ID:           r.ID,
		Name:         r.Name,
		University:   r.University,
		BookingType:  domain.BookingType(r.BookingType),
		PricePerHour: price,
		OpenTime:     open,
		CloseTime:    closeT,
		WorkingDays:  days,
		MaxCapacity:  r.MaxCapacity,
	}, nil
}

// SlotResponse один слот дневной доступности
type SlotResponse struct {
	Time           string `json:"time"`
	IsAvailable    bool   `json:"is_available"`
	Reason         string `json:"reason"`
	BookedCount    int    `json:"booked_count"`
	MaxCapacity    int    `json:"max_capacity"`
	AvailableSpots int    `json:"available_spots"`
}

// DailyAvailabilityResponse дневная доступность объекта
type DailyAvailabilityResponse struct {
	FacilityID  int64          `json:"facility_id"`
	BookingType string         `json:"booking_type"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
	Message     string         `json:"message"`
}

// ToDomain конвертирует дневную доступность в доменную модель
func (r *DailyAvailabilityResponse) ToDomain() (*domain.DailyAvailability, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q: %v", ErrInvalidResponse, r.Date, err)
	}
	slots := make([]domain.AvailabilitySlot, 0, len(r.Slots))
	for _, s := range r.Slots {
		t, err := parsePlatformTime(s.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: bad slot time %q: %v", ErrInvalidResponse, s.Time, err)
		}
		slots = append(slots, domain.AvailabilitySlot{
			Time:           t,
			IsAvailable:    s.IsAvailable,
			Reason:         domain.UnavailabilityReason(s.Reason),
			BookedCount:    s.BookedCount,
			MaxCapacity:    s.MaxCapacity,
			AvailableSpots: s.AvailableSpots,
		})
	}
	return &domain.DailyAvailability{
		FacilityID:  r.FacilityID,
		BookingType: domain.BookingType(r.BookingType),
		Date:        date,
		Slots:       slots,
		Message:     r.Message,
	}, nil
}

// MatrixCellResponse ячейка матрицы доступности абонемента
type MatrixCellResponse struct {
	IsAvailable    bool   `json:"is_available"`
	AvailableSpots int    `json:"available_spots"`
	Reason         string `json:"reason"`
}

// SubscriptionMatrixResponse матрица (день недели, время) -> доступность.
// Ключ дня - строка "0".."6", понедельник = "0".
type SubscriptionMatrixResponse struct {
	FacilityID         int64                                    `json:"facility_id"`
	BookingType        string                                   `json:"booking_type"`
	AvailabilityMatrix map[string]map[string]MatrixCellResponse `json:"availability_matrix"`
}

// ToDomain конвертирует матрицу в доменную модель
func (r *SubscriptionMatrixResponse) ToDomain() (*domain.SubscriptionMatrix, error) {
	cells := make(map[domain.Weekday]map[types.TimeString]domain.MatrixCell, len(r.AvailabilityMatrix))
	for dayKey, times := range r.AvailabilityMatrix {
		dayNum, err := strconv.Atoi(dayKey)
		if err != nil || !domain.Weekday(dayNum).Valid() {
			return nil, fmt.Errorf("%w: bad matrix day key %q", ErrInvalidResponse, dayKey)
		}
		day := domain.Weekday(dayNum)
		cells[day] = make(map[types.TimeString]domain.MatrixCell, len(times))
		for timeKey, cell := range times {
			t, err := parsePlatformTime(timeKey)
			if err != nil {
				return nil, fmt.Errorf("%w: bad matrix time key %q: %v", ErrInvalidResponse, timeKey, err)
			}
			cells[day][t] = domain.MatrixCell{
				IsAvailable:    cell.IsAvailable,
				AvailableSpots: cell.AvailableSpots,
				Reason:         domain.UnavailabilityReason(cell.Reason),
			}
		}
	}
	return &domain.SubscriptionMatrix{
		FacilityID:  r.FacilityID,
		BookingType: domain.BookingType(r.BookingType),
		Cells:       cells,
	}, nil
}

// PrepareOrderRequest запрос на создание заказа.
// Поля слотового заказа и абонемента взаимоисключающие.
type PrepareOrderRequest struct {
	ItemType   string   `json:"item_type"`
	FacilityID int64    `json:"facility_id"`
	Date       string   `json:"date,omitempty"`
	Slots      []string `json:"slots,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
	Months     int      `json:"months,omitempty"`
	DaysOfWeek []int    `json:"days_of_week,omitempty"`
	StartTimes []string `json:"start_times,omitempty"`
}

// PrepareOrderResponse ответ на создание заказа
type PrepareOrderResponse struct {
	OrderIdentifier string `json:"order_identifier"`
}

// CheckoutURLResponse ответ с платежной ссылкой Payme
type CheckoutURLResponse struct {
	PaymeCheckoutURL string `json:"payme_checkout_url"`
}

// PaymentStatusResponse статус оплаты заказа
type PaymentStatusResponse struct {
	OrderIdentifier string `json:"order_identifier"`
	Status          string `json:"status"`
}

// OrderSlotResponse интервал заказа
type OrderSlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// OrderDetailsResponse детали заказа для check-in по короткому коду
type OrderDetailsResponse struct {
	OrderIdentifier       string              `json:"order_identifier"`
	OrderCode             string              `json:"order_code"`
	OrderType             string              `json:"order_type"`
	Status                string              `json:"status"`
	TotalPrice            string              `json:"total_price"`
	FacilityName          string              `json:"facility_name"`
	UniversityName        string              `json:"university_name"`
	CustomerName          string              `json:"customer_name"`
	BookingDate           string              `json:"booking_date"`
	Slots                 []OrderSlotResponse `json:"slots"`
	SubscriptionStartDate string              `json:"subscription_start_date"`
	SubscriptionEndDate   string              `json:"subscription_end_date"`
	DaysOfWeek            []int               `json:"days_of_week"`
	StartTimes            []string            `json:"start_times"`
	CreatedAt             time.Time           `json:"created_at"`
}

// ToDomain конвертирует детали заказа в доменную модель
func (r *OrderDetailsResponse) ToDomain() (*domain.Order, error) {
	price, err := strconv.ParseFloat(r.TotalPrice, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad total_price %q: %v", ErrInvalidResponse, r.TotalPrice, err)
	}
	order := &domain.Order{
		Identifier:   r.OrderIdentifier,
		OrderCode:    r.OrderCode,
		OrderType:    domain.OrderType(r.OrderType),
		Status:       domain.OrderStatus(r.Status),
		TotalPrice:   price,
		CustomerName: r.CustomerName,
		Facility: domain.Facility{
			Name:       r.FacilityName,
			University: r.UniversityName,
		},
		CreatedAt: r.CreatedAt,
	}
	if r.BookingDate != "" {
		d, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad booking_date %q: %v", ErrInvalidResponse, r.BookingDate, err)
		}
		order.BookingDate = d
	}
	for _, s := range r.Slots {
		start, err := parsePlatformTime(s.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad slot start %q: %v", ErrInvalidResponse, s.StartTime, err)
		}
		end, err := parsePlatformTime(s.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: bad slot end %q: %v", ErrInvalidResponse, s.EndTime, err)
		}
		order.Slots = append(order.Slots, domain.OrderSlot{StartTime: start, EndTime: end})
	}
	if r.SubscriptionStartDate != "" {
		d, err := time.Parse(domain.DateFormat, r.SubscriptionStartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad subscription_start_date %q: %v", ErrInvalidResponse, r.SubscriptionStartDate, err)
		}
		order.SubscriptionStart = d
	}
	if r.SubscriptionEndDate != "" {
		d, err := time.Parse(domain.DateFormat, r.SubscriptionEndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: bad subscription_end_date %q: %v", ErrInvalidResponse, r.SubscriptionEndDate, err)
		}
		order.SubscriptionEnd = d
	}
	for _, d := range r.DaysOfWeek {
		wd := domain.Weekday(d)
		if !wd.Valid() {
			return nil, fmt.Errorf("%w: bad day of week %d", ErrInvalidResponse, d)
		}
		order.DaysOfWeek = append(order.DaysOfWeek, wd)
	}
	for _, t := range r.StartTimes {
		ts, err := parsePlatformTime(t)
		if err != nil {
			return nil, fmt.Errorf("%w: bad start time %q: %v", ErrInvalidResponse, t, err)
		}
		order.StartTimes = append(order.StartTimes, ts)
	}
	return order, nil
}

// CompleteOrderResponse результат завершения заказа на проходной
type CompleteOrderResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	// AlreadyCompleted заказ был завершен ранее; это сообщение, не ошибка
	AlreadyCompleted bool `json:"already_completed"`
}

// ErrorResponse модель ошибки от платформы
type ErrorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// Message возвращает первое непустое поле ошибки
func (e *ErrorResponse) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}

// parsePlatformTime парсит время платформы: "HH:MM:SS" или "HH:MM"
func parsePlatformTime(s string) (types.TimeString, error) {
	if len(s) >= 5 {
		if ts, err := types.NewTimeStringFromString(s[:5]); err == nil {
			return ts, nil
		}
	}
	return "", fmt.Errorf("unsupported time value: %q", s)
}
