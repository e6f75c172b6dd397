package create_booking

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomNotBookable возвращается, когда комната отключена для бронирования
	ErrRoomNotBookable = errors.New("create_booking: room is not bookable")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: interval is outside business hours")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующим бронированием
	// Также возвращается, когда конкурентное создание выиграло гонку за тот же интервал
	ErrSlotConflict = errors.New("create_booking: interval conflicts with an existing booking")

	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("create_booking: invalid time interval")

	// ErrBookingInPast возвращается при попытке забронировать прошедшее время
	ErrBookingInPast = errors.New("create_booking: booking starts in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
