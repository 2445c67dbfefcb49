package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Проверки формата выполняются до обращений к хранилищу
func validateRequest(req *Request) error {
	if req.BeraterID < 1 {
		return fmt.Errorf("%w: beraterID must be positive", ErrInvalidInput)
	}
	if req.TerminartID < 1 {
		return fmt.Errorf("%w: terminartID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.Ende.IsZero() {
		return fmt.Errorf("%w: start and ende are required", ErrInvalidInput)
	}
	if !req.Ende.After(req.Start) {
		return fmt.Errorf("%w: ende must be after start", ErrInvalidInput)
	}

	if strings.TrimSpace(req.KundenName) == "" {
		return fmt.Errorf("%w: kundenName is required", ErrInvalidInput)
	}
	if len(req.KundenName) > domain.MaxKundenNameLength {
		return fmt.Errorf("%w: kundenName exceeds %d characters", ErrInvalidInput, domain.MaxKundenNameLength)
	}

	if strings.TrimSpace(req.KundenVertragsnummer) == "" {
		return fmt.Errorf("%w: kundenVertragsnummer is required", ErrInvalidInput)
	}
	if len(req.KundenVertragsnummer) > domain.MaxVertragsnummerLength {
		return fmt.Errorf("%w: kundenVertragsnummer exceeds %d characters", ErrInvalidInput, domain.MaxVertragsnummerLength)
	}

	if req.KundenEmail != "" {
		if len(req.KundenEmail) > domain.MaxKundenEmailLength {
			return fmt.Errorf("%w: kundenEmail exceeds %d characters", ErrInvalidInput, domain.MaxKundenEmailLength)
		}
		if !strings.Contains(req.KundenEmail, "@") {
			return fmt.Errorf("%w: kundenEmail is malformed", ErrInvalidInput)
		}
	}

	return nil
}

// isAvailable проверяет, свободен ли интервал у консультанта.
// Интервал свободен, если не пересекается ни с одним существующим
// бронированием (общий предикат domain.Interval.Overlaps: границы
// "впритык" пересечением не считаются)
func isAvailable(requested domain.Interval, existing []*domain.Booking) bool {
	for _, b := range existing {
		if requested.Overlaps(b.Interval()) {
			return false
		}
	}
	return true
}
