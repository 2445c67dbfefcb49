package get_free_slots

import "errors"

var (
	// ErrTerminartNotFound возвращается, когда Terminart не найдена
	ErrTerminartNotFound = errors.New("get_free_slots: appointment type not found")

	// ErrInvalidWeekNumber возвращается, когда номер календарной недели
	// меньше текущей недели или больше допустимого максимума
	ErrInvalidWeekNumber = errors.New("get_free_slots: invalid calendar week number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_free_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_free_slots: internal error")
)
