package unisport

import "errors"

var (
	// ErrNotFound возвращается, когда объект, заказ или код не найдены на платформе
	ErrNotFound = errors.New("unisport client: resource not found")

	// ErrConflict возвращается, когда платформа отклонила заказ из-за конкурентного
	// бронирования. Текст от платформы сохраняется дословно в ConflictError
	ErrConflict = errors.New("unisport client: booking conflict")

	// ErrUnauthorized возвращается при отсутствующем или просроченном токене
	ErrUnauthorized = errors.New("unisport client: unauthorized")

	// ErrForbidden возвращается, когда токену не хватает прав (например, не staff)
	ErrForbidden = errors.New("unisport client: forbidden")

	// ErrValidation возвращается, когда платформа отклонила запрос как некорректный
	ErrValidation = errors.New("unisport client: request rejected by platform")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("unisport client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("unisport client: invalid response")

	// ErrUnavailable возвращается при сетевых ошибках и ответах 5xx
	ErrUnavailable = errors.New("unisport client: platform unavailable")

	// ErrPending возвращается на 202: платформа еще обрабатывает заказ,
	// запрос имеет смысл повторить
	ErrPending = errors.New("unisport client: order still processing")
)

// ConflictError несет дословное сообщение платформы о конфликте бронирования.
// Пользователь должен увидеть его без пересказа.
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// ValidationError несет сообщение платформы об отклоненном запросе
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return e.Detail
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
