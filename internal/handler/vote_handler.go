package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type VoteHandler struct {
	voteService service.VoteService
}

func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

// Vote godoc
// @Summary      후보 음식점에 투표
// @Description  roulette 모임의 후보에 투표합니다. 다시 투표하면 이전 투표를 대체합니다.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Param        request body dto.VoteRequest true "투표 요청"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "투표 성공"
// @Failure      400 {object} response.ErrorResponse "후보가 아닌 음식점"
// @Failure      403 {object} response.ErrorResponse "참가자가 아님"
// @Failure      409 {object} response.ErrorResponse "모집이 끝난 모임"
// @Router       /meetings/{meetingId}/vote [post]
func (h *VoteHandler) Vote(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	vote, err := h.voteService.Vote(c.Request.Context(), meetingID, authData.UserID, req.RestaurantID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, vote)
}

// GetMyVote godoc
// @Summary      내 투표 조회
// @Description  해당 모임에서 내가 투표한 음식점을 조회합니다
// @Tags         votes
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.VoteResponse} "조회 성공 (투표가 없으면 data가 null)"
// @Router       /meetings/{meetingId}/vote [get]
func (h *VoteHandler) GetMyVote(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	vote, err := h.voteService.GetMyVote(c.Request.Context(), meetingID, authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, vote)
}
