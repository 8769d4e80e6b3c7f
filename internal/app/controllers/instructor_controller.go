package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/facultyroster/internal/app/models"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/middleware"
	"github.com/yigit/facultyroster/internal/pkg/helpers"
)

// InstructorController handles instructor-related operations
type InstructorController struct {
	rosterService services.RosterService
}

// NewInstructorController creates a new InstructorController
func NewInstructorController(rosterService services.RosterService) *InstructorController {
	return &InstructorController{
		rosterService: rosterService,
	}
}

// ListInstructors lists instructors of the roster
// @Summary List instructors
// @Description Lists instructors in roster order, optionally filtered by department, degree level and institution
// @Tags instructors
// @Produce json
// @Param department query string false "Department name (case-insensitive)"
// @Param level query string false "Degree level" Enums(BACHELOR, MASTER, DOCTORATE)
// @Param institution query string false "Substring of a granting institution"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.InstructorResponse}} "Instructors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /instructors [get]
func (c *InstructorController) ListInstructors(ctx *gin.Context) {
	var query dto.ListInstructorsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.HandleValidationError(err)))
		return
	}

	filter := services.InstructorFilter{
		Department:  query.Department,
		Institution: query.Institution,
	}
	if query.Level != "" {
		level, ok := models.ParseDegreeLevel(query.Level)
		if !ok {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid degree level").WithField("level")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		filter.Level = level
	}

	instructors, err := c.rosterService.ListInstructors(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, info := helpers.Paginate(instructors, query.Page, query.Size)
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Data: dto.PaginatedResponse{
			Items:      dto.FromInstructors(page),
			Pagination: info,
		},
		Timestamp: time.Now(),
	})
}

// GetInstructor retrieves an instructor by ID
// @Summary Get instructor by ID
// @Description Retrieves an instructor with degrees, the highest degree and the canonical roster record
// @Tags instructors
// @Produce json
// @Param id path string true "Instructor ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=dto.InstructorResponse} "Instructor retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructor(ctx *gin.Context) {
	id, ok := parseInstructorID(ctx)
	if !ok {
		return
	}

	instructor, err := c.rosterService.GetInstructor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromInstructor(instructor, true), ""))
}

// GetDegreeYears returns the run-length counts of an instructor's degree years
// @Summary Degree year runs of an instructor
// @Description Collapses adjacent equal degree years, in the order the degrees are listed
// @Tags instructors
// @Produce json
// @Param id path string true "Instructor ID (UUID)"
// @Success 200 {object} dto.APIResponse{data=dto.CountsResponse[int]} "Degree years retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid instructor ID"
// @Failure 404 {object} dto.ErrorResponse "Instructor not found"
// @Router /instructors/{id}/degree-years [get]
func (c *InstructorController) GetDegreeYears(ctx *gin.Context) {
	id, ok := parseInstructorID(ctx)
	if !ok {
		return
	}

	runs, err := c.rosterService.DegreeYearRuns(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCountsResponse(runs), ""))
}

// parseInstructorID reads the :id path parameter and writes a 400 response
// when it is not a UUID.
func parseInstructorID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid instructor ID").
			WithField("id").
			WithDetails("Instructor ID must be a valid UUID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return id, true
}
