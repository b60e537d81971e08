package service

import (
	"context"
	"fmt"
	"health_data_api/internal/app/validation"
	"health_data_api/internal/domain/model"
	"health_data_api/internal/domain/repository"

	"go.uber.org/zap"
)

type HealthDataService struct {
	healthDataRepo repository.HealthDataRepository
	validator      *validation.Validator
	logger         *zap.Logger
}

func NewHealthDataService(healthDataRepo repository.HealthDataRepository, v *validation.Validator, logger *zap.Logger) *HealthDataService {
	return &HealthDataService{healthDataRepo: healthDataRepo, validator: v, logger: logger}
}

type CreateHealthDataRequest struct {
	ID     string          `json:"id,omitempty"`                // ignored, the store assigns ids
	UserID *string         `json:"user_id" validate:"required"` // presence only, "" is allowed
	Date   model.Timestamp `json:"date" validate:"required"`
	Weight float64         `json:"weight" validate:"gt=0"`
}

func (s *HealthDataService) CreateHealthData(ctx context.Context, req CreateHealthDataRequest) (*model.HealthData, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	record := model.HealthData{
		UserID: *req.UserID,
		Date:   model.TruncateToStore(req.Date.Time),
		Weight: req.Weight,
	}
	s.logger.Info("Health data to insert",
		zap.String("user_id", record.UserID),
		zap.Time("date", record.Date),
		zap.Float64("weight", record.Weight),
	)

	id, err := s.healthDataRepo.Create(ctx, record)
	if err != nil {
		s.logger.Error("Error inserting health data", zap.String("user_id", record.UserID), zap.Error(err))
		return nil, fmt.Errorf("error inserting health data: %w", err)
	}
	record.ID = id
	return &record, nil
}

// ListHealthData never fails for an unknown user; it returns an empty slice.
func (s *HealthDataService) ListHealthData(ctx context.Context, userID string) ([]model.HealthData, error) {
	records, err := s.healthDataRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving health data: %w", err)
	}
	return records, nil
}
