package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/middleware"
)

// RosterController exposes the state of the loaded roster
type RosterController struct {
	rosterService services.RosterService
}

// NewRosterController creates a new RosterController
func NewRosterController(rosterService services.RosterService) *RosterController {
	return &RosterController{
		rosterService: rosterService,
	}
}

// GetStatus reports the loaded roster
// @Summary Roster status
// @Tags roster
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RosterStatusResponse} "Status retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /roster [get]
func (c *RosterController) GetStatus(ctx *gin.Context) {
	status, err := c.rosterService.Status(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toStatusResponse(status), ""))
}

// Reload reloads the roster file
// @Summary Reload the roster
// @Description Reads the roster file again. On failure the previous roster keeps being served.
// @Tags roster
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.RosterStatusResponse} "Roster reloaded"
// @Failure 422 {object} dto.ErrorResponse "Roster file contains a malformed row"
// @Failure 400 {object} dto.ErrorResponse "Roster file contains a malformed degree"
// @Failure 502 {object} dto.ErrorResponse "Roster file could not be read"
// @Router /roster/reload [post]
func (c *RosterController) Reload(ctx *gin.Context) {
	status, err := c.rosterService.Reload(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(toStatusResponse(status), "Roster reloaded"))
}

func toStatusResponse(status services.RosterStatus) dto.RosterStatusResponse {
	return dto.RosterStatusResponse{
		Instructors: status.Instructors,
		Departments: status.Departments,
		LoadedAt:    status.LoadedAt,
	}
}
