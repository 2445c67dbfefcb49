package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/OBT-TerminService/internal/domain"
)

var slotStart = time.Date(2023, time.June, 12, 10, 0, 0, 0, time.UTC)

func validRequest() *Request {
	return &Request{
		BeraterID:            1,
		TerminartID:          2,
		Start:                slotStart,
		Ende:                 slotStart.Add(30 * time.Minute),
		KundenName:           "Max Mustermann",
		KundenVertragsnummer: "V-2023-0042",
		KundenEmail:          "max@example.com",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{"valid request", func(r *Request) {}, false},
		{"email optional", func(r *Request) { r.KundenEmail = "" }, false},
		{"zero beraterID", func(r *Request) { r.BeraterID = 0 }, true},
		{"zero terminartID", func(r *Request) { r.TerminartID = 0 }, true},
		{"missing start", func(r *Request) { r.Start = time.Time{} }, true},
		{"ende equals start", func(r *Request) { r.Ende = r.Start }, true},
		{"ende before start", func(r *Request) { r.Ende = r.Start.Add(-15 * time.Minute) }, true},
		{"blank kundenName", func(r *Request) { r.KundenName = "   " }, true},
		{"kundenName too long", func(r *Request) { r.KundenName = strings.Repeat("a", domain.MaxKundenNameLength+1) }, true},
		{"blank vertragsnummer", func(r *Request) { r.KundenVertragsnummer = "" }, true},
		{"vertragsnummer too long", func(r *Request) { r.KundenVertragsnummer = strings.Repeat("1", domain.MaxVertragsnummerLength+1) }, true},
		{"malformed email", func(r *Request) { r.KundenEmail = "not-an-email" }, true},
		{"email too long", func(r *Request) { r.KundenEmail = strings.Repeat("a", domain.MaxKundenEmailLength) + "@x.de" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	requested := domain.Interval{Start: slotStart, End: slotStart.Add(30 * time.Minute)}

	booking := func(offsetStart, offsetEnd time.Duration) *domain.Booking {
		return &domain.Booking{
			BeraterID: 1,
			Start:     slotStart.Add(offsetStart),
			Ende:      slotStart.Add(offsetEnd),
		}
	}

	tests := []struct {
		name     string
		existing []*domain.Booking
		want     bool
	}{
		{"no existing bookings", nil, true},
		{"same interval", []*domain.Booking{booking(0, 30*time.Minute)}, false},
		{"contained inside", []*domain.Booking{booking(10*time.Minute, 20*time.Minute)}, false},
		{"partial overlap at start", []*domain.Booking{booking(-15*time.Minute, 15*time.Minute)}, false},
		{"partial overlap at end", []*domain.Booking{booking(15*time.Minute, 45*time.Minute)}, false},
		{"back-to-back before", []*domain.Booking{booking(-30*time.Minute, 0)}, true},
		{"back-to-back after", []*domain.Booking{booking(30*time.Minute, time.Hour)}, true},
		{"one of several overlaps", []*domain.Booking{booking(-30*time.Minute, 0), booking(25*time.Minute, 55*time.Minute)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAvailable(requested, tt.existing))
		})
	}
}
