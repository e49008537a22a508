package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rosnMagar/RateMyClass/internal/app/models"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/app/services"
	"github.com/rosnMagar/RateMyClass/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// SearchCourses lists courses with aggregates
// @Summary Search courses
// @Description Retrieves all courses with rating aggregates, optionally filtered by a search term
// @Tags courses
// @Produce json
// @Param search query string false "Search term over name, number, major and school"
// @Success 200 {array} dto.CourseWithRatings "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	courses, err := c.courseService.SearchCourses(ctx, ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseWithRatings, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, courseToDTO(course))
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetCourse retrieves one course with aggregates
// @Summary Get course
// @Description Retrieves a course with its rating aggregates
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseWithRatings "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courseToDTO(course))
}

// GetCourseDetail retrieves one course with all ratings embedded
// @Summary Get course detail
// @Description Retrieves a course with aggregates and its full list of ratings, newest first
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse "Course detail retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/detail [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	id, ok := parseCourseID(ctx)
	if !ok {
		return
	}

	course, ratings, err := c.courseService.GetCourseDetail(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CourseDetailResponse{
		CourseWithRatings: courseToDTO(course),
		Ratings:           make([]dto.RatingResponse, 0, len(ratings)),
	}
	for _, rating := range ratings {
		resp.Ratings = append(resp.Ratings, ratingToDTO(rating))
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateCourse creates a course with its initial rating (admin only)
// @Summary Create a course
// @Description Creates a course and its initial rating; the school is created by name when absent
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course information with initial rating"
// @Success 201 {object} dto.CourseWithRatings "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Admin role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.BindingErrorMessage(err, "invalid course data")))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, courseToDTO(course))
}

func parseCourseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("course ID must be a valid number"))
		return 0, false
	}
	return id, true
}

func courseToDTO(course *models.Course) dto.CourseWithRatings {
	return dto.CourseWithRatings{
		CourseID:             course.ID,
		CourseName:           course.Name,
		CourseNumber:         course.Number,
		Major:                course.Major,
		SchoolID:             course.SchoolID,
		SchoolName:           course.SchoolName,
		DialoguesRequirement: course.DialoguesRequirement,
		DeliveryMode:         course.DeliveryMode,
		AverageRating:        course.AverageRating,
		RatingCount:          course.RatingCount,
		CreatedAt:            course.CreatedAt,
	}
}

func ratingToDTO(rating *models.Rating) dto.RatingResponse {
	return dto.RatingResponse{
		RatingID:  rating.ID,
		CourseID:  rating.CourseID,
		Rating:    rating.Rating,
		Review:    rating.Review,
		Textbook:  rating.Textbook,
		CreatedAt: rating.CreatedAt,
	}
}
