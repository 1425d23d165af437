package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
)

const testJWTSecret = "test-secret"

func TestUserService_SignUp(t *testing.T) {
	t.Run("성공: 가입하면 user_id 클레임이 든 토큰이 발급된다", func(t *testing.T) {
		var created *domain.User
		userRepo := &mockUserRepository{
			FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
			CreateFunc: func(ctx context.Context, user *domain.User) error {
				user.ID = uuid.New()
				created = user
				return nil
			},
		}
		svc := &userServiceImpl{userRepo: userRepo, jwtSecret: testJWTSecret, logger: zap.NewNop()}

		resp, err := svc.SignUp(context.Background(), &dto.SignUpRequest{
			Nickname: "포스테키안", Password: "pass1234", ProfileIcon: "🍜",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		// 비밀번호는 평문으로 저장되지 않는다
		assert.NotEqual(t, "pass1234", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("pass1234")))

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, created.ID.String(), claims["user_id"])
	})

	t.Run("실패: 이미 사용 중인 닉네임", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
				return &domain.User{Nickname: nickname}, nil
			},
		}
		svc := &userServiceImpl{userRepo: userRepo, jwtSecret: testJWTSecret, logger: zap.NewNop()}

		_, err := svc.SignUp(context.Background(), &dto.SignUpRequest{Nickname: "포스테키안", Password: "pass1234"})
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeAlreadyExists, appErrorCode(t, err))
	})
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := &domain.User{Nickname: "포스테키안", PasswordHash: string(hash)}
	existing.ID = uuid.New()

	t.Run("성공: 올바른 자격 증명", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
				return existing, nil
			},
		}
		svc := &userServiceImpl{userRepo: userRepo, jwtSecret: testJWTSecret, logger: zap.NewNop()}

		resp, err := svc.Login(context.Background(), &dto.LoginRequest{Nickname: "포스테키안", Password: "pass1234"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, existing.ID, resp.User.ID)
	})

	t.Run("실패: 잘못된 비밀번호", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
				return existing, nil
			},
		}
		svc := &userServiceImpl{userRepo: userRepo, jwtSecret: testJWTSecret, logger: zap.NewNop()}

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Nickname: "포스테키안", Password: "wrong"})
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeUnauthorized, appErrorCode(t, err))
	})

	t.Run("실패: 없는 닉네임도 같은 에러 코드", func(t *testing.T) {
		userRepo := &mockUserRepository{
			FindByNicknameFunc: func(ctx context.Context, nickname string) (*domain.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := &userServiceImpl{userRepo: userRepo, jwtSecret: testJWTSecret, logger: zap.NewNop()}

		_, err := svc.Login(context.Background(), &dto.LoginRequest{Nickname: "없는사람", Password: "pass1234"})
		require.Error(t, err)
		assert.Equal(t, response.ErrCodeUnauthorized, appErrorCode(t, err))
	})
}
