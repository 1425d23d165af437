package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
)

const (
	restaurantListCacheKey = "restaurants:all"
	restaurantCacheTTL     = 5 * time.Minute
)

// RestaurantService defines the interface for the restaurant catalog
type RestaurantService interface {
	CreateRestaurant(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error)
	ListRestaurants(ctx context.Context) ([]dto.RestaurantResponse, error)
}

// restaurantServiceImpl is the implementation of RestaurantService
type restaurantServiceImpl struct {
	restaurantRepo repository.RestaurantRepository
	redisClient    *redis.Client
	logger         *zap.Logger
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, redisClient *redis.Client, logger *zap.Logger) RestaurantService {
	return &restaurantServiceImpl{
		restaurantRepo: restaurantRepo,
		redisClient:    redisClient,
		logger:         logger,
	}
}

// CreateRestaurant registers a restaurant and invalidates the list cache
func (s *restaurantServiceImpl) CreateRestaurant(ctx context.Context, req *dto.CreateRestaurantRequest) (*dto.RestaurantResponse, error) {
	restaurant := &domain.Restaurant{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		MapURL:      req.MapURL,
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create restaurant", err.Error())
	}

	s.invalidateListCache(ctx)

	s.logger.Info("Restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("name", restaurant.Name),
	)

	return s.toRestaurantResponse(restaurant), nil
}

// GetRestaurant fetches a single restaurant by ID
func (s *restaurantServiceImpl) GetRestaurant(ctx context.Context, id uuid.UUID) (*dto.RestaurantResponse, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Restaurant not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch restaurant", err.Error())
	}
	return s.toRestaurantResponse(restaurant), nil
}

// ListRestaurants returns the whole catalog, read-through cached in Redis.
// The catalog is small and changes rarely, so a single list key is enough.
func (s *restaurantServiceImpl) ListRestaurants(ctx context.Context) ([]dto.RestaurantResponse, error) {
	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, restaurantListCacheKey).Result()
		if err == nil {
			var responses []dto.RestaurantResponse
			if err := json.Unmarshal([]byte(cached), &responses); err == nil {
				return responses, nil
			}
			// 캐시 깨졌으면 DB로
			s.logger.Warn("Failed to decode cached restaurant list", zap.Error(err))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Redis lookup failed, falling back to DB", zap.Error(err))
		}
	}

	restaurants, err := s.restaurantRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch restaurants", err.Error())
	}

	responses := make([]dto.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		responses = append(responses, *s.toRestaurantResponse(restaurant))
	}

	if s.redisClient != nil {
		if payload, err := json.Marshal(responses); err == nil {
			if err := s.redisClient.Set(ctx, restaurantListCacheKey, payload, restaurantCacheTTL).Err(); err != nil {
				s.logger.Warn("Failed to cache restaurant list", zap.Error(err))
			}
		}
	}

	return responses, nil
}

func (s *restaurantServiceImpl) invalidateListCache(ctx context.Context) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, restaurantListCacheKey).Err(); err != nil {
		s.logger.Warn("Failed to invalidate restaurant cache", zap.Error(err))
	}
}

// toRestaurantResponse converts domain.Restaurant to dto.RestaurantResponse
func (s *restaurantServiceImpl) toRestaurantResponse(restaurant *domain.Restaurant) *dto.RestaurantResponse {
	return &dto.RestaurantResponse{
		ID:          restaurant.ID,
		Name:        restaurant.Name,
		Category:    restaurant.Category,
		Description: restaurant.Description,
		MapURL:      restaurant.MapURL,
		CreatedAt:   restaurant.CreatedAt,
	}
}
