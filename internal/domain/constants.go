package domain

// SlotStrideMinutes шаг генерации кандидатных слотов.
// Минимальная Terminart длится 15 минут, поэтому кандидаты проверяются
// каждые 15 минут независимо от длительности слота
const SlotStrideMinutes = 15

// Business validation constants (из ограничений модели данных)
const (
	MaxKundenNameLength      = 100
	MaxVertragsnummerLength  = 50
	MaxKundenEmailLength     = 50
	MaxAppointmentTypeMinute = 480 // 8 часов — страховка от мусорных Terminarten
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // локальное время без зоны, как в API
)
