package route

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/controller"
	"github.com/scribearc/scribearc/internal/middleware"
)

func V1_Projects(r *gin.RouterGroup, pc *controller.ProjectController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/projects")
	{
		// public intake
		v1.POST("", pc.Intake)

		staff := v1.Group("")
		staff.Use(middleware.AuthMiddleware, middleware.RequireStaff)
		{
			staff.GET("", pc.ListProjects)
			staff.GET("/at-risk", pc.ListAtRisk)
			staff.GET("/:projectId", pc.GetProjectById)
			staff.GET("/:projectId/history", pc.GetProjectHistory)
			staff.POST("/:projectId/validate", pc.ValidateProject)
			staff.POST("/:projectId/reject", pc.RejectProject)
			staff.POST("/:projectId/assign", pc.AssignWriter)
			staff.POST("/:projectId/request-revision", pc.RequestRevision)
			staff.POST("/:projectId/complete", pc.CompleteProject)
			staff.POST("/:projectId/settle", pc.SettleProject)
			staff.POST("/:projectId/cancel", pc.CancelProject)
			staff.PATCH("/:projectId/price", pc.AdjustPrice)
		}

		writer := v1.Group("")
		writer.Use(middleware.AuthMiddleware, middleware.RequireWriter)
		{
			writer.GET("/mine", pc.ListMyProjects)
			writer.POST("/:projectId/start", pc.StartProject)
			writer.POST("/:projectId/submit-review", pc.SubmitForReview)
		}
	}
}
