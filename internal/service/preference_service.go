package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
)

// PreferenceService defines the interface for personal restaurant preferences
type PreferenceService interface {
	UpsertPreference(ctx context.Context, userID uuid.UUID, req *dto.UpsertPreferenceRequest) (*dto.PreferenceResponse, error)
	ListMyPreferences(ctx context.Context, userID uuid.UUID) ([]dto.PreferenceResponse, error)
	DeletePreference(ctx context.Context, userID, restaurantID uuid.UUID) error
}

// preferenceServiceImpl is the implementation of PreferenceService
type preferenceServiceImpl struct {
	preferenceRepo repository.PreferenceRepository
	restaurantRepo repository.RestaurantRepository
	logger         *zap.Logger
}

// NewPreferenceService creates a new instance of PreferenceService
func NewPreferenceService(
	preferenceRepo repository.PreferenceRepository,
	restaurantRepo repository.RestaurantRepository,
	logger *zap.Logger,
) PreferenceService {
	return &preferenceServiceImpl{
		preferenceRepo: preferenceRepo,
		restaurantRepo: restaurantRepo,
		logger:         logger,
	}
}

// UpsertPreference creates or replaces the caller's preference for a restaurant
func (s *preferenceServiceImpl) UpsertPreference(ctx context.Context, userID uuid.UUID, req *dto.UpsertPreferenceRequest) (*dto.PreferenceResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, req.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Restaurant not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch restaurant", err.Error())
	}

	preference := &domain.Preference{
		UserID:       userID,
		RestaurantID: req.RestaurantID,
		Score:        req.Score,
		Status:       req.Status,
		Note:         req.Note,
	}
	if err := s.preferenceRepo.Upsert(ctx, preference); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to save preference", err.Error())
	}

	resp := s.toPreferenceResponse(preference)
	resp.RestaurantName = restaurant.Name
	return resp, nil
}

// ListMyPreferences returns all of the caller's preferences
func (s *preferenceServiceImpl) ListMyPreferences(ctx context.Context, userID uuid.UUID) ([]dto.PreferenceResponse, error) {
	preferences, err := s.preferenceRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch preferences", err.Error())
	}

	responses := make([]dto.PreferenceResponse, 0, len(preferences))
	for _, preference := range preferences {
		resp := s.toPreferenceResponse(preference)
		resp.RestaurantName = preference.Restaurant.Name
		responses = append(responses, *resp)
	}
	return responses, nil
}

// DeletePreference removes the caller's preference for a restaurant
func (s *preferenceServiceImpl) DeletePreference(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := s.preferenceRepo.Delete(ctx, userID, restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Preference not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete preference", err.Error())
	}
	return nil
}

// toPreferenceResponse converts domain.Preference to dto.PreferenceResponse
func (s *preferenceServiceImpl) toPreferenceResponse(preference *domain.Preference) *dto.PreferenceResponse {
	return &dto.PreferenceResponse{
		ID:           preference.ID,
		RestaurantID: preference.RestaurantID,
		Score:        preference.Score,
		Status:       preference.Status,
		Note:         preference.Note,
		UpdatedAt:    preference.UpdatedAt,
	}
}
