package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type RouletteHandler struct {
	rouletteService service.RouletteService
}

func NewRouletteHandler(rouletteService service.RouletteService) *RouletteHandler {
	return &RouletteHandler{
		rouletteService: rouletteService,
	}
}

// Spin godoc
// @Summary      룰렛 스핀
// @Description  호스트가 가중치 추첨을 실행합니다. 모임당 단 한 번만 가능합니다.
// @Tags         roulette
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.SpinResponse} "추첨 성공"
// @Failure      403 {object} response.ErrorResponse "호스트가 아님"
// @Failure      409 {object} response.ErrorResponse "이미 추첨했거나 모집이 끝남"
// @Router       /meetings/{meetingId}/spin [post]
func (h *RouletteHandler) Spin(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	result, err := h.rouletteService.Spin(c.Request.Context(), meetingID, authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
