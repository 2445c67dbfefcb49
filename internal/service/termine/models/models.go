package models

import (
	"time"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	BeraterID   int64  `json:"beraterId"`
	TerminartID int    `json:"terminartId"`
	Start       string `json:"start"` // "2023-06-12T10:00:00"
	Ende        string `json:"ende"`

	KundenName           string  `json:"kundenName"`
	KundenVertragsnummer string  `json:"kundenVertragsnummer"`
	KundenEmail          string  `json:"kundenEmail,omitempty"`
	KundenGesamtbeitrag  float64 `json:"kundenGesamtbeitrag,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                   b.ID,
		BeraterID:            b.BeraterID,
		TerminartID:          b.TerminartID,
		Start:                b.Start.Format(domain.DateTimeFormat),
		Ende:                 b.Ende.Format(domain.DateTimeFormat),
		KundenName:           b.KundenName,
		KundenVertragsnummer: b.KundenVertragsnummer,
		KundenEmail:          b.KundenEmail,
		KundenGesamtbeitrag:  b.KundenGesamtbeitrag,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}
