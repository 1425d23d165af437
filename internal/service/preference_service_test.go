package service

import (
	"context"
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

func TestPreferenceService_UpsertPreference(t *testing.T) {
	userID := uuid.New()
	restaurantID := uuid.New()

	knownRestaurant := &mockRestaurantRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
			r := &domain.Restaurant{Name: "순이"}
			r.ID = restaurantID
			return r, nil
		},
	}

	t.Run("성공: 선호도 저장", func(t *testing.T) {
		var saved *domain.Preference
		preferenceRepo := &mockPreferenceRepository{
			UpsertFunc: func(ctx context.Context, preference *domain.Preference) error {
				preference.ID = uuid.New()
				saved = preference
				return nil
			},
		}

		svc := &preferenceServiceImpl{
			preferenceRepo: preferenceRepo,
			restaurantRepo: knownRestaurant,
			logger:         zap.NewNop(),
		}

		score := float32(4.5)
		resp, err := svc.UpsertPreference(context.Background(), userID, &dto.UpsertPreferenceRequest{
			RestaurantID: restaurantID,
			Score:        &score,
			Status:       "favorite",
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, userID, saved.UserID)
		assert.Equal(t, restaurantID, resp.RestaurantID)
		assert.Equal(t, "순이", resp.RestaurantName)
		require.NotNil(t, resp.Score)
		assert.InDelta(t, 4.5, float64(*resp.Score), 0.001)
	})

	t.Run("실패: 존재하지 않는 음식점", func(t *testing.T) {
		restaurantRepo := &mockRestaurantRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := &preferenceServiceImpl{
			preferenceRepo: &mockPreferenceRepository{},
			restaurantRepo: restaurantRepo,
			logger:         zap.NewNop(),
		}

		_, err := svc.UpsertPreference(context.Background(), userID, &dto.UpsertPreferenceRequest{
			RestaurantID: uuid.New(),
		})

		assert.Equal(t, response.ErrCodeNotFound, appErrorCode(t, err))
	})
}

func TestPreferenceService_ListMyPreferences(t *testing.T) {
	userID := uuid.New()

	t.Run("성공: 음식점 이름 포함 목록 반환", func(t *testing.T) {
		restaurantID := uuid.New()
		preferenceRepo := &mockPreferenceRepository{
			FindByUserFunc: func(ctx context.Context, uid uuid.UUID) ([]*domain.Preference, error) {
				p := &domain.Preference{
					UserID:       uid,
					RestaurantID: restaurantID,
					Status:       "favorite",
					Restaurant:   domain.Restaurant{Name: "맘스터치"},
				}
				p.ID = uuid.New()
				return []*domain.Preference{p}, nil
			},
		}

		svc := &preferenceServiceImpl{preferenceRepo: preferenceRepo, logger: zap.NewNop()}

		responses, err := svc.ListMyPreferences(context.Background(), userID)

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, restaurantID, responses[0].RestaurantID)
		assert.Equal(t, "맘스터치", responses[0].RestaurantName)
		assert.Equal(t, "favorite", responses[0].Status)
	})
}

func TestPreferenceService_DeletePreference(t *testing.T) {
	userID := uuid.New()

	t.Run("성공: 선호도 삭제", func(t *testing.T) {
		deleted := false
		preferenceRepo := &mockPreferenceRepository{
			DeleteFunc: func(ctx context.Context, uid, rid uuid.UUID) error {
				deleted = true
				return nil
			},
		}

		svc := &preferenceServiceImpl{preferenceRepo: preferenceRepo, logger: zap.NewNop()}

		err := svc.DeletePreference(context.Background(), userID, uuid.New())

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("실패: 존재하지 않는 선호도", func(t *testing.T) {
		preferenceRepo := &mockPreferenceRepository{
			DeleteFunc: func(ctx context.Context, uid, rid uuid.UUID) error {
				return gorm.ErrRecordNotFound
			},
		}

		svc := &preferenceServiceImpl{preferenceRepo: preferenceRepo, logger: zap.NewNop()}

		err := svc.DeletePreference(context.Background(), userID, uuid.New())

		assert.Equal(t, response.ErrCodeNotFound, appErrorCode(t, err))
	})
}
