package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/util"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	util.ResponseSuccess(ctx, gin.H{
		"service": "scribearc-api",
		"env":     ic.app.Config.ENV,
	})
}
