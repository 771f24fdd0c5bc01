package route

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/controller"
)

func V1_Tracking(r *gin.RouterGroup, trackingController *controller.TrackingController) {
	v1 := r.Group("/v1/track")
	{
		v1.POST("/session", trackingController.CreateSession)
		v1.GET("/:secret", trackingController.GetSummary)
		v1.POST("/:secret/verify", trackingController.VerifyPin)
		v1.GET("/:secret/detail", trackingController.GetDetail)
	}
}
