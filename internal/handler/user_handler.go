package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// SignUp godoc
// @Summary      회원 가입
// @Description  닉네임과 비밀번호로 계정을 만들고 토큰을 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.SignUpRequest true "가입 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.AuthResponse} "가입 성공"
// @Failure      409 {object} response.ErrorResponse "닉네임 중복"
// @Router       /auth/signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, err := h.userService.SignUp(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, auth)
}

// Login godoc
// @Summary      로그인
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "로그인 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.AuthResponse} "로그인 성공"
// @Failure      401 {object} response.ErrorResponse "잘못된 자격 증명"
// @Router       /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	auth, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, auth)
}

// GetMe godoc
// @Summary      내 프로필 조회
// @Tags         users
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "조회 성공"
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      내 프로필 수정
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateProfileRequest true "프로필 수정 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse} "수정 성공"
// @Router       /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), authData.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}
