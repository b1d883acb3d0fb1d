package prepare_order

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("prepare_order: invalid input data")

	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("prepare_order: facility not found")

	// ErrIncompatibleBookingType возвращается, когда тип заказа не соответствует объекту
	ErrIncompatibleBookingType = errors.New("prepare_order: booking type is not supported by this facility")

	// ErrPastDate возвращается при дате в прошлом
	ErrPastDate = errors.New("prepare_order: date is in the past")

	// ErrEmptySelection возвращается, когда в заказе нечего бронировать
	ErrEmptySelection = errors.New("prepare_order: selection is empty")

	// ErrSelectionOutdated возвращается, когда выбор не прошел сверку со свежей
	// доступностью. Пользователю нужно обновить выбор и попробовать снова
	ErrSelectionOutdated = errors.New("prepare_order: selection is no longer available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("prepare_order: internal error")
)
