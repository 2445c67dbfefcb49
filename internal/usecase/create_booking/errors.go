package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
	// с существующим бронированием консультанта
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrBeraterNotFound возвращается, когда консультант не найден
	ErrBeraterNotFound = errors.New("create_booking: advisor not found")

	// ErrTerminartNotFound возвращается, когда Terminart не найдена
	ErrTerminartNotFound = errors.New("create_booking: appointment type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
