package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	BeraterID            int64     // ID консультанта
	TerminartID          int       // ID типа консультации
	Start                time.Time // Начало бронирования
	Ende                 time.Time // Конец бронирования (исключительно)
	KundenName           string    // Имя клиента (обязательно)
	KundenVertragsnummer string    // Номер договора клиента (обязательно)
	KundenEmail          string    // Email клиента (опционально)
	KundenGesamtbeitrag  float64   // Совокупный взнос клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   int64
	BeraterID            int64
	TerminartID          int
	Start                time.Time
	Ende                 time.Time
	KundenName           string
	KundenVertragsnummer string
	KundenEmail          string
	KundenGesamtbeitrag  float64
	CreatedAt            time.Time
}
