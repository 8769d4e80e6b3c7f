package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	rosterService services.RosterService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(rosterService services.RosterService) *DepartmentController {
	return &DepartmentController{
		rosterService: rosterService,
	}
}

// GetHeadcounts retrieves the number of instructors per department
// @Summary Department headcounts
// @Description Lists departments alphabetically with the number of instructors in each, as [name, count] pairs
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountsResponse[string]} "Headcounts retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /departments [get]
func (c *DepartmentController) GetHeadcounts(ctx *gin.Context) {
	runs, err := c.rosterService.DepartmentHeadcounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.NewCountsResponse(runs),
		Timestamp: time.Now(),
	})
}

// GetDepartmentInstructors retrieves the instructors of a department
// @Summary Instructors of a department
// @Description Lists the instructors of a department in roster order
// @Tags departments
// @Produce json
// @Param name path string true "Department name (case-insensitive)"
// @Success 200 {object} dto.APIResponse{data=[]dto.InstructorResponse} "Instructors retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid department name"
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /departments/{name}/instructors [get]
func (c *DepartmentController) GetDepartmentInstructors(ctx *gin.Context) {
	instructors, err := c.rosterService.GetInstructorsByDepartment(ctx, ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      dto.FromInstructors(instructors),
		Timestamp: time.Now(),
	})
}
