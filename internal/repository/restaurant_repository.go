package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
)

// RestaurantRepository defines the interface for restaurant data access
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *domain.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Restaurant, error)
	FindAll(ctx context.Context) ([]*domain.Restaurant, error)
}

// restaurantRepositoryImpl is the GORM implementation of RestaurantRepository
type restaurantRepositoryImpl struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new instance of RestaurantRepository
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepositoryImpl{db: db}
}

// Create creates a new restaurant
func (r *restaurantRepositoryImpl) Create(ctx context.Context, restaurant *domain.Restaurant) error {
	if err := r.db.WithContext(ctx).Create(restaurant).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a restaurant by its ID
func (r *restaurantRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// FindByIDs finds restaurants by their IDs
func (r *restaurantRepositoryImpl) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Restaurant, error) {
	if len(ids) == 0 {
		return []*domain.Restaurant{}, nil
	}

	var restaurants []*domain.Restaurant
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

// FindAll returns the whole restaurant catalog ordered by name
func (r *restaurantRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Restaurant, error) {
	var restaurants []*domain.Restaurant
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
