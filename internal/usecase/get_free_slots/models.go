package get_free_slots

import "time"

// Request модель запроса на получение свободных слотов
type Request struct {
	KalenderWoche int // Номер календарной недели (текущая..52)
	TerminartID   int // ID типа консультации (определяет длительность)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	KalenderWoche int    // Запрошенная неделя
	TerminartID   int    // Запрошенный тип консультации
	Slots         []Slot // Свободные слоты, отсортированные по началу
}

// Slot свободное окно у конкретного консультанта
type Slot struct {
	BeraterID   int64
	TerminartID int
	Start       time.Time
	Ende        time.Time
}
