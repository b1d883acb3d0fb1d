package preview_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_price: invalid input data")

	// ErrFacilityNotFound возвращается, когда объект не найден
	ErrFacilityNotFound = errors.New("preview_price: facility not found")

	// ErrPriceUnavailable возвращается, когда цену нельзя посчитать для данного
	// выбора. Нулевая цена никогда не используется как заглушка
	ErrPriceUnavailable = errors.New("preview_price: price cannot be calculated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_price: internal error")
)
