package hours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDuplicateWeekday возвращается, когда в запросе два правила на один день недели
	ErrDuplicateWeekday = errors.New("duplicate weekday in rules")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
