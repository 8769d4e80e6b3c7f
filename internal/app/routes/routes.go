package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/facultyroster/internal/app/controllers"
	"github.com/yigit/facultyroster/internal/app/models/dto"
	"github.com/yigit/facultyroster/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	instructorController *controllers.InstructorController,
	departmentController *controllers.DepartmentController,
	degreeController *controllers.DegreeController,
	rosterController *controllers.RosterController,
) {
	// Health check
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	instructors := v1.Group("/instructors")
	{
		instructors.GET("", instructorController.ListInstructors)
		instructors.GET("/:id", instructorController.GetInstructor)
		instructors.GET("/:id/degree-years", instructorController.GetDegreeYears)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetHeadcounts)
		departments.GET("/:name/instructors", departmentController.GetDepartmentInstructors)
	}

	degrees := v1.Group("/degrees")
	{
		degrees.GET("/kinds", degreeController.GetKindCounts)
		degrees.GET("/levels", degreeController.GetLevelCounts)
		degrees.GET("/institutions", degreeController.GetInstitutionCounts)
		degrees.POST("/parse",
			middleware.ValidateRequest(func() interface{} { return &dto.ParseDegreeRequest{} }),
			degreeController.ParseDegree)
	}

	roster := v1.Group("/roster")
	{
		roster.GET("", rosterController.GetStatus)
		roster.POST("/reload", rosterController.Reload)
	}
}
