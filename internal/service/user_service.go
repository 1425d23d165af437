package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/domain"
	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/response"
)

const tokenTTL = 24 * time.Hour

// UserService defines the interface for accounts and sessions
type UserService interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo  repository.UserRepository
	jwtSecret string
	logger    *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo repository.UserRepository, jwtSecret string, logger *zap.Logger) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// SignUp creates an account with a unique nickname and returns a session token
func (s *userServiceImpl) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	if _, err := s.userRepo.FindByNickname(ctx, req.Nickname); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Nickname is already taken", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check nickname", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Nickname:     req.Nickname,
		PasswordHash: string(hash),
		ProfileIcon:  req.ProfileIcon,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// 유니크 제약 경합 시에도 같은 에러로
		if strings.Contains(strings.ToLower(err.Error()), "unique") ||
			strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Nickname is already taken", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	s.logger.Info("User signed up", zap.String("user_id", user.ID.String()))

	return &dto.AuthResponse{
		Token: token,
		User:  *s.toUserResponse(user),
	}, nil
}

// Login verifies credentials and returns a session token
func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByNickname(ctx, req.Nickname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid nickname or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid nickname or password", "")
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &dto.AuthResponse{
		Token: token,
		User:  *s.toUserResponse(user),
	}, nil
}

// GetProfile returns the user's profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return s.toUserResponse(user), nil
}

// UpdateProfile updates mutable profile fields
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	user.ProfileIcon = req.ProfileIcon
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	return s.toUserResponse(user), nil
}

// issueToken signs an HS256 session token with user_id and sub claims
func (s *userServiceImpl) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"sub":     userID.String(),
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// toUserResponse converts domain.User to dto.UserResponse
func (s *userServiceImpl) toUserResponse(user *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:          user.ID,
		Nickname:    user.Nickname,
		ProfileIcon: user.ProfileIcon,
		CreatedAt:   user.CreatedAt,
	}
}
