package reference

import (
	"context"
	"fmt"

	"github.com/m04kA/OBT-TerminService/internal/service/reference/models"
)

// Service сервис справочных данных (Terminarten и Berater)
type Service struct {
	referenceRepo ReferenceRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса справочных данных
func NewService(referenceRepo ReferenceRepository, logger Logger) *Service {
	return &Service{
		referenceRepo: referenceRepo,
		logger:        logger,
	}
}

// ListTerminarten получает список всех типов консультаций
func (s *Service) ListTerminarten(ctx context.Context) (*models.TerminartListResponse, error) {
	s.logger.Info("ListTerminarten: fetching appointment types")

	types, err := s.referenceRepo.ListAppointmentTypes(ctx)
	if err != nil {
		s.logger.Error("ListTerminarten: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListTerminarten - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTerminarten: successfully fetched %d appointment types", len(types))
	return models.FromDomainAppointmentTypes(types), nil
}

// ListBerater получает список всех консультантов
func (s *Service) ListBerater(ctx context.Context) (*models.BeraterListResponse, error) {
	s.logger.Info("ListBerater: fetching advisors")

	advisors, err := s.referenceRepo.ListAdvisors(ctx)
	if err != nil {
		s.logger.Error("ListBerater: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBerater - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBerater: successfully fetched %d advisors", len(advisors))
	return models.FromDomainAdvisors(advisors), nil
}
