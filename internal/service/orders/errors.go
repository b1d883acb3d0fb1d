package orders

import "errors"

var (
	// ErrOrderNotFound заказ или код не найдены на платформе
	ErrOrderNotFound = errors.New("order not found")

	// ErrBookingConflict платформа отклонила заказ из-за конкурентного бронирования.
	// Сообщение платформы сохраняется дословно в ConflictError
	ErrBookingConflict = errors.New("booking conflict")

	// ErrUnauthorized токен отсутствует или просрочен
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden токену не хватает прав
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput платформа отклонила запрос как некорректный
	ErrInvalidInput = errors.New("invalid input")

	// ErrPlatformUnavailable платформа недоступна, попытки исчерпаны
	ErrPlatformUnavailable = errors.New("booking platform unavailable")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)

// ConflictError несет дословное сообщение платформы о конфликте
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrBookingConflict
}

// InputError несет сообщение платформы об отклоненном запросе
type InputError struct {
	Detail string
}

func (e *InputError) Error() string {
	return e.Detail
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
