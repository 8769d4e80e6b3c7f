package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/middleware"
)

// DegreeController handles degree statistics and parsing
type DegreeController struct {
	rosterService services.RosterService
}

// NewDegreeController creates a new DegreeController
func NewDegreeController(rosterService services.RosterService) *DegreeController {
	return &DegreeController{
		rosterService: rosterService,
	}
}

// GetKindCounts counts degrees per kind
// @Summary Degree kind counts
// @Tags degrees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountsResponse[string]} "Counts retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /degrees/kinds [get]
func (c *DegreeController) GetKindCounts(ctx *gin.Context) {
	runs, err := c.rosterService.DegreeKindCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCountsResponse(runs), ""))
}

// GetLevelCounts counts degrees per level
// @Summary Degree level counts
// @Tags degrees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountsResponse[string]} "Counts retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /degrees/levels [get]
func (c *DegreeController) GetLevelCounts(ctx *gin.Context) {
	runs, err := c.rosterService.DegreeLevelCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCountsResponse(runs), ""))
}

// GetInstitutionCounts counts degrees per granting institution
// @Summary Institution counts
// @Tags degrees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.CountsResponse[string]} "Counts retrieved successfully"
// @Failure 503 {object} dto.ErrorResponse "Roster not loaded"
// @Router /degrees/institutions [get]
func (c *DegreeController) GetInstitutionCounts(ctx *gin.Context) {
	runs, err := c.rosterService.InstitutionCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewCountsResponse(runs), ""))
}

// ParseDegree parses one degree description
// @Summary Parse a degree description
// @Description Parses "<year>, <kind>, <institution>" and classifies the degree
// @Tags degrees
// @Accept json
// @Produce json
// @Param request body dto.ParseDegreeRequest true "Degree description"
// @Success 200 {object} dto.APIResponse{data=dto.DegreeResponse} "Degree parsed successfully"
// @Failure 400 {object} dto.ErrorResponse "Malformed degree description"
// @Router /degrees/parse [post]
func (c *DegreeController) ParseDegree(ctx *gin.Context) {
	req := ctx.MustGet(middleware.ValidatedBodyKey).(*dto.ParseDegreeRequest)

	degree, err := c.rosterService.ParseDegree(ctx, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromDegree(degree), "Degree parsed successfully"))
}
