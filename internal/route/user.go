package route

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/controller"
	"github.com/scribearc/scribearc/internal/middleware"
)

func V1_Users(r *gin.RouterGroup, userController *controller.UserController, middleware *middleware.Middleware) {
	v1 := r.Group("/v1/users")
	v1.Use(middleware.AuthMiddleware)
	{
		v1.POST("", middleware.RequireStaff, userController.CreateUser)
		v1.GET("/writers", middleware.RequireStaff, userController.ListWriters)
	}
}
