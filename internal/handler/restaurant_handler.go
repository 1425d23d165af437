package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"meeting-roulette-api/internal/dto"
	"meeting-roulette-api/internal/response"
	"meeting-roulette-api/internal/service"
)

type RestaurantHandler struct {
	restaurantService service.RestaurantService
}

func NewRestaurantHandler(restaurantService service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// CreateRestaurant godoc
// @Summary      음식점 등록
// @Description  새 음식점을 카탈로그에 등록합니다
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateRestaurantRequest true "음식점 등록 요청"
// @Success      201 {object} response.SuccessResponse{data=dto.RestaurantResponse} "등록 성공"
// @Failure      400 {object} response.ErrorResponse "잘못된 요청"
// @Router       /restaurants [post]
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	restaurant, err := h.restaurantService.CreateRestaurant(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, restaurant)
}

// GetRestaurant godoc
// @Summary      음식점 단건 조회
// @Tags         restaurants
// @Produce      json
// @Param        restaurantId path string true "Restaurant ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.RestaurantResponse} "조회 성공"
// @Failure      404 {object} response.ErrorResponse "음식점을 찾을 수 없음"
// @Router       /restaurants/{restaurantId} [get]
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.restaurantService.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, restaurant)
}

// ListRestaurants godoc
// @Summary      음식점 목록 조회
// @Description  전체 음식점 카탈로그를 조회합니다 (캐시됨)
// @Tags         restaurants
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=[]dto.RestaurantResponse} "목록 조회 성공"
// @Router       /restaurants [get]
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.restaurantService.ListRestaurants(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, restaurants)
}
