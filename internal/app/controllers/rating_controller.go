package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/app/services"
	"github.com/rosnMagar/RateMyClass/internal/middleware"
)

// RatingController handles rating submissions
type RatingController struct {
	ratingService *services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService *services.RatingService) *RatingController {
	return &RatingController{
		ratingService: ratingService,
	}
}

// CreateRating submits a rating for an existing course
// @Summary Submit a rating
// @Description Stores a 1-5 rating with a review for an existing course; no authentication required
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Rating information"
// @Success 201 {object} dto.RatingResponse "Rating created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating data or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorMessage(err, "invalid rating data")))
		return
	}

	rating, err := c.ratingService.CreateRating(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, ratingToDTO(rating))
}
