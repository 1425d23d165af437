package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type PreferenceHandler struct {
	preferenceService service.PreferenceService
}

func NewPreferenceHandler(preferenceService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// UpsertPreference godoc
// @Summary      음식점 선호 저장
// @Description  음식점에 대한 내 선호를 만들거나 교체합니다
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        request body dto.UpsertPreferenceRequest true "선호 저장 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.PreferenceResponse} "저장 성공"
// @Failure      404 {object} response.ErrorResponse "음식점을 찾을 수 없음"
// @Router       /preferences [put]
func (h *PreferenceHandler) UpsertPreference(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.UpsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	preference, err := h.preferenceService.UpsertPreference(c.Request.Context(), authData.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, preference)
}

// ListMyPreferences godoc
// @Summary      내 선호 목록 조회
// @Tags         preferences
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.PreferenceResponse} "조회 성공"
// @Router       /preferences [get]
func (h *PreferenceHandler) ListMyPreferences(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	preferences, err := h.preferenceService.ListMyPreferences(c.Request.Context(), authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, preferences)
}

// DeletePreference godoc
// @Summary      선호 삭제
// @Tags         preferences
// @Produce      json
// @Param        restaurantId path string true "Restaurant ID (UUID)"
// @Success      200 {object} response.SuccessResponse "삭제 성공"
// @Failure      404 {object} response.ErrorResponse "선호를 찾을 수 없음"
// @Router       /preferences/{restaurantId} [delete]
func (h *PreferenceHandler) DeletePreference(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid restaurant ID")
		return
	}

	if err := h.preferenceService.DeletePreference(c.Request.Context(), authData.UserID, restaurantID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
