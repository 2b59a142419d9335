package usecase

import (
	"seat-booking/internal/data/repository"
	"seat-booking/pkg/messaging"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
}

func NewService(repo *repository.Repository, publisher messaging.Publisher, log *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, publisher, log),
	}
}
