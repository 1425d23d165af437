package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
)

func TestRestaurantService_CreateRestaurant(t *testing.T) {
	t.Run("성공: 음식점 등록", func(t *testing.T) {
		var created *domain.Restaurant
		restaurantRepo := &mockRestaurantRepository{
			CreateFunc: func(ctx context.Context, restaurant *domain.Restaurant) error {
				restaurant.ID = uuid.New()
				created = restaurant
				return nil
			},
		}

		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		resp, err := svc.CreateRestaurant(context.Background(), &dto.CreateRestaurantRequest{
			Name:     "맘스터치",
			Category: "버거",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "맘스터치", resp.Name)
		assert.Equal(t, "버거", resp.Category)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("실패: 저장소 오류", func(t *testing.T) {
		restaurantRepo := &mockRestaurantRepository{
			CreateFunc: func(ctx context.Context, restaurant *domain.Restaurant) error {
				return errors.New("database error")
			},
		}

		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		_, err := svc.CreateRestaurant(context.Background(), &dto.CreateRestaurantRequest{Name: "순이"})

		assert.Equal(t, response.ErrCodeInternal, appErrorCode(t, err))
	})
}

func TestRestaurantService_GetRestaurant(t *testing.T) {
	t.Run("성공: 음식점 조회", func(t *testing.T) {
		restaurantID := uuid.New()
		restaurantRepo := &mockRestaurantRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
				r := &domain.Restaurant{Name: "순이", Category: "한식"}
				r.ID = restaurantID
				return r, nil
			},
		}

		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		resp, err := svc.GetRestaurant(context.Background(), restaurantID)

		require.NoError(t, err)
		assert.Equal(t, restaurantID, resp.ID)
		assert.Equal(t, "순이", resp.Name)
	})

	t.Run("실패: 존재하지 않는 음식점", func(t *testing.T) {
		restaurantRepo := &mockRestaurantRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		_, err := svc.GetRestaurant(context.Background(), uuid.New())

		assert.Equal(t, response.ErrCodeNotFound, appErrorCode(t, err))
	})
}

func TestRestaurantService_ListRestaurants(t *testing.T) {
	t.Run("성공: 캐시 없이 전체 목록 반환", func(t *testing.T) {
		r1 := &domain.Restaurant{Name: "순이"}
		r1.ID = uuid.New()
		r2 := &domain.Restaurant{Name: "맘스터치"}
		r2.ID = uuid.New()

		restaurantRepo := &mockRestaurantRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Restaurant, error) {
				return []*domain.Restaurant{r1, r2}, nil
			},
		}

		// redisClient nil이면 캐시 건너뛰고 DB 조회
		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		responses, err := svc.ListRestaurants(context.Background())

		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, "순이", responses[0].Name)
		assert.Equal(t, "맘스터치", responses[1].Name)
	})

	t.Run("실패: 저장소 오류", func(t *testing.T) {
		restaurantRepo := &mockRestaurantRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.Restaurant, error) {
				return nil, errors.New("database error")
			},
		}

		svc := &restaurantServiceImpl{restaurantRepo: restaurantRepo, logger: zap.NewNop()}

		_, err := svc.ListRestaurants(context.Background())

		assert.Equal(t, response.ErrCodeInternal, appErrorCode(t, err))
	})
}
