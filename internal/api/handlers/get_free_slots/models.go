package get_free_slots

import (
	"github.com/m04kA/OBT-TerminService/internal/domain"
	getFreeSlots "github.com/m04kA/OBT-TerminService/internal/usecase/get_free_slots"
)

// SlotResponse свободное окно у конкретного консультанта
type SlotResponse struct {
	BeraterID   int64  `json:"beraterId"`
	TerminartID int    `json:"terminartId"`
	Start       string `json:"start"` // "2023-06-12T10:00:00"
	Ende        string `json:"ende"`
}

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	KalenderWoche int            `json:"kalenderWoche"`
	TerminartID   int            `json:"terminartId"`
	Slots         []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			BeraterID:   s.BeraterID,
			TerminartID: s.TerminartID,
			Start:       s.Start.Format(domain.DateTimeFormat),
			Ende:        s.Ende.Format(domain.DateTimeFormat),
		})
	}

	return &FreeSlotsResponse{
		KalenderWoche: resp.KalenderWoche,
		TerminartID:   resp.TerminartID,
		Slots:         slots,
	}
}
