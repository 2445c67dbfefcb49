package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/OBT-TerminService/internal/domain"
	createBooking "github.com/m04kA/OBT-TerminService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BeraterID            int64   `json:"beraterId"`
	TerminartID          int     `json:"terminartId"`
	Start                string  `json:"start"` // "2023-06-12T10:00:00"
	Ende                 string  `json:"ende"`
	KundenName           string  `json:"kundenName"`
	KundenVertragsnummer string  `json:"kundenVertragsnummer"`
	KundenEmail          string  `json:"kundenEmail,omitempty"`
	KundenGesamtbeitrag  float64 `json:"kundenGesamtbeitrag,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64   `json:"id"`
	BeraterID            int64   `json:"beraterId"`
	TerminartID          int     `json:"terminartId"`
	Start                string  `json:"start"`
	Ende                 string  `json:"ende"`
	KundenName           string  `json:"kundenName"`
	KundenVertragsnummer string  `json:"kundenVertragsnummer"`
	KundenEmail          string  `json:"kundenEmail,omitempty"`
	KundenGesamtbeitrag  float64 `json:"kundenGesamtbeitrag,omitempty"`
	CreatedAt            string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start: %w", err)
	}

	ende, err := time.Parse(domain.DateTimeFormat, r.Ende)
	if err != nil {
		return nil, fmt.Errorf("invalid ende: %w", err)
	}

	return &createBooking.Request{
		BeraterID:            r.BeraterID,
		TerminartID:          r.TerminartID,
		Start:                start,
		Ende:                 ende,
		KundenName:           r.KundenName,
		KundenVertragsnummer: r.KundenVertragsnummer,
		KundenEmail:          r.KundenEmail,
		KundenGesamtbeitrag:  r.KundenGesamtbeitrag,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                   resp.ID,
		BeraterID:            resp.BeraterID,
		TerminartID:          resp.TerminartID,
		Start:                resp.Start.Format(domain.DateTimeFormat),
		Ende:                 resp.Ende.Format(domain.DateTimeFormat),
		KundenName:           resp.KundenName,
		KundenVertragsnummer: resp.KundenVertragsnummer,
		KundenEmail:          resp.KundenEmail,
		KundenGesamtbeitrag:  resp.KundenGesamtbeitrag,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
