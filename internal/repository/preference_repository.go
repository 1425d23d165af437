package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
)

// PreferenceRepository defines the interface for preference data access
type PreferenceRepository interface {
	Upsert(ctx context.Context, preference *domain.Preference) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Preference, error)
	Delete(ctx context.Context, userID, restaurantID uuid.UUID) error
}

// preferenceRepositoryImpl is the GORM implementation of PreferenceRepository
type preferenceRepositoryImpl struct {
	db *gorm.DB
}

// NewPreferenceRepository creates a new instance of PreferenceRepository
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepositoryImpl{db: db}
}

// Upsert creates the preference or updates the existing (user, restaurant) row
func (r *preferenceRepositoryImpl) Upsert(ctx context.Context, preference *domain.Preference) error {
	var existing domain.Preference
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", preference.UserID, preference.RestaurantID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(preference).Error
	}
	if err != nil {
		return err
	}

	preference.ID = existing.ID
	preference.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(preference).Error
}

// FindByUser finds all preferences of a user with restaurants preloaded
func (r *preferenceRepositoryImpl) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Preference, error) {
	var preferences []*domain.Preference
	if err := r.db.WithContext(ctx).
		Preload("Restaurant").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&preferences).Error; err != nil {
		return nil, err
	}
	return preferences, nil
}

// Delete removes a preference row
func (r *preferenceRepositoryImpl) Delete(ctx context.Context, userID, restaurantID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&domain.Preference{}).Error; err != nil {
		return err
	}
	return nil
}
