package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rosnMagar/RateMyClass/internal/app/models/dto"
	"github.com/rosnMagar/RateMyClass/internal/app/services"
	"github.com/rosnMagar/RateMyClass/internal/middleware"
)

// SchoolController handles school-related endpoints
type SchoolController struct {
	schoolService *services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService *services.SchoolService) *SchoolController {
	return &SchoolController{
		schoolService: schoolService,
	}
}

// GetAllSchools lists all schools
// @Summary List schools
// @Description Retrieves all schools ordered by name
// @Tags schools
// @Produce json
// @Success 200 {array} dto.SchoolResponse "Schools retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAllSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.SchoolResponse, 0, len(schools))
	for _, school := range schools {
		resp = append(resp, dto.SchoolResponse{
			SchoolID:   school.ID,
			SchoolName: school.Name,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetSchoolCourses lists the courses of one school
// @Summary List school courses
// @Description Retrieves the courses of a school (id, name, number, major)
// @Tags schools
// @Produce json
// @Param id path int true "School ID"
// @Success 200 {array} dto.CourseListItem "Courses retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid school ID"
// @Failure 404 {object} dto.ErrorResponse "School not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schools/{id}/courses [get]
func (c *SchoolController) GetSchoolCourses(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("school ID must be a valid number"))
		return
	}

	courses, err := c.schoolService.GetSchoolCourses(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.CourseListItem, 0, len(courses))
	for _, course := range courses {
		resp = append(resp, dto.CourseListItem{
			CourseID:     course.ID,
			CourseName:   course.Name,
			CourseNumber: course.Number,
			Major:        course.Major,
		})
	}

	ctx.JSON(http.StatusOK, resp)
}
