package route

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/controller"
)

func V1_Clients(r *gin.RouterGroup, clientController *controller.ClientController) {
	v1 := r.Group("/v1/clients")
	{
		v1.POST("", clientController.RegisterClient)
		v1.GET("/referral/:code", clientController.LookupReferralCode)
	}
}
