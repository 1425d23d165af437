package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type MeetingHandler struct {
	meetingService service.MeetingService
}

func NewMeetingHandler(meetingService service.MeetingService) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// CreateMeeting godoc
// @Summary      모임 생성
// @Description  fixed 또는 roulette 모임을 생성합니다. 이미 활동 중인 사용자는 생성할 수 없습니다.
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateMeetingRequest true "모임 생성 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.MeetingDetailResponse} "모임 생성 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Failure      409 {object} response.ErrorResponse "이미 호스팅/참가 중"
// @Router       /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	var req dto.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	meeting, err := h.meetingService.CreateMeeting(c.Request.Context(), authData.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, meeting)
}

// GetMeeting godoc
// @Summary      모임 상세 조회
// @Description  후보, 참가자, 내 투표 여부를 포함한 모임 상세를 조회합니다
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.MeetingDetailResponse} "모임 조회 성공"
// @Failure      404 {object} response.ErrorResponse "모임을 찾을 수 없음"
// @Router       /meetings/{meetingId} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	meeting, err := h.meetingService.GetMeeting(c.Request.Context(), meetingID, authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meeting)
}

// ListMeetings godoc
// @Summary      주차별 모임 목록 조회
// @Description  ISO 주차 번호로 모임 목록을 조회합니다
// @Tags         meetings
// @Produce      json
// @Param        week query int true "ISO 주차 번호 (1-53)"
// @Success      200 {object} response.SuccessResponse{data=[]dto.MeetingResponse} "모임 목록 조회 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 주차 번호"
// @Router       /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil || week < 1 || week > 53 {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid week number")
		return
	}

	meetings, err := h.meetingService.ListByWeek(c.Request.Context(), week)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meetings)
}

// MyMeetings godoc
// @Summary      내 모임 조회
// @Description  내가 호스팅/참가 중인 모임과 생성 가능 여부를 조회합니다
// @Tags         meetings
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.MyMeetingsResponse} "조회 성공"
// @Router       /meetings/me [get]
func (h *MeetingHandler) MyMeetings(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetings, err := h.meetingService.MyMeetings(c.Request.Context(), authData.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, meetings)
}

// JoinMeeting godoc
// @Summary      모임 참가
// @Description  모집 중인 모임에 참가합니다. 한 번에 하나의 모임에만 참가할 수 있습니다.
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse "참가 성공"
// @Failure      409 {object} response.ErrorResponse "이미 참가 중이거나 모집이 끝남"
// @Router       /meetings/{meetingId}/join [post]
func (h *MeetingHandler) JoinMeeting(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	if err := h.meetingService.Join(c.Request.Context(), meetingID, authData.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// LeaveMeeting godoc
// @Summary      모임 탈퇴
// @Description  참가 중인 모임에서 나갑니다. 호스트는 탈퇴 대신 해산해야 합니다.
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse "탈퇴 성공"
// @Failure      403 {object} response.ErrorResponse "호스트이거나 참가자가 아님"
// @Router       /meetings/{meetingId}/leave [post]
func (h *MeetingHandler) LeaveMeeting(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	if err := h.meetingService.Leave(c.Request.Context(), meetingID, authData.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}

// DissolveMeeting godoc
// @Summary      모임 해산
// @Description  호스트가 모임을 해산합니다. 참가자와 투표도 함께 삭제됩니다.
// @Tags         meetings
// @Produce      json
// @Param        meetingId path string true "Meeting ID (UUID)"
// @Success      200 {object} response.SuccessResponse "해산 성공"
// @Failure      403 {object} response.ErrorResponse "호스트가 아님"
// @Router       /meetings/{meetingId} [delete]
func (h *MeetingHandler) DissolveMeeting(c *gin.Context) {
	authData, ok := ExtractAuthData(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("meetingId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid meeting ID")
		return
	}

	if err := h.meetingService.Dissolve(c.Request.Context(), meetingID, authData.UserID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, nil)
}
