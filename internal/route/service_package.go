package route

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/controller"
	"github.com/scribearc/scribearc/internal/middleware"
)

func V1_Packages(r *gin.RouterGroup, packageController *controller.ServicePackageController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/packages")
	{
		v1.GET("", packageController.ListPackages)
		v1.GET("/:packageId", packageController.GetPackageById)
		v1.POST("", middleware.AuthMiddleware, middleware.RequireStaff, packageController.CreatePackage)
	}
}
