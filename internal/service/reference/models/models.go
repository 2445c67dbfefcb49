package models

import "github.com/m04kA/OBT-TerminService/internal/domain"

// TerminartResponse тип консультации
type TerminartResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DauerMinuten int    `json:"dauerMinuten"`
}

// TerminartListResponse список типов консультаций
type TerminartListResponse struct {
	Terminarten []TerminartResponse `json:"terminarten"`
}

// BeraterResponse консультант
type BeraterResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BeraterListResponse список консультантов
type BeraterListResponse struct {
	Berater []BeraterResponse `json:"berater"`
}

// FromDomainAppointmentTypes конвертирует domain модели в DTO
func FromDomainAppointmentTypes(types []*domain.AppointmentType) *TerminartListResponse {
	out := make([]TerminartResponse, 0, len(types))
	for _, t := range types {
		out = append(out, TerminartResponse{
			ID:           t.ID,
			Name:         t.Name,
			DauerMinuten: t.DauerMinuten,
		})
	}
	return &TerminartListResponse{Terminarten: out}
}

// FromDomainAdvisors конвертирует domain модели в DTO
func FromDomainAdvisors(advisors []*domain.Advisor) *BeraterListResponse {
	out := make([]BeraterResponse, 0, len(advisors))
	for _, a := range advisors {
		out = append(out, BeraterResponse{ID: a.ID, Name: a.Name})
	}
	return &BeraterListResponse{Berater: out}
}
