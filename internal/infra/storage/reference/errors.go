package reference

import "errors"

var (
	// ErrAppointmentTypeNotFound возвращается, когда Terminart не найдена
	ErrAppointmentTypeNotFound = errors.New("reference.repository: appointment type not found")

	// ErrAdvisorNotFound возвращается, когда Berater не найден
	ErrAdvisorNotFound = errors.New("reference.repository: advisor not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reference.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reference.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reference.repository: failed to scan row")
)
