package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/util"
	"gorm.io/gorm"
)

type ServicePackageController struct {
	*baseController
}

type createPackageRequest struct {
	Name        string        `json:"name" binding:"required,strNotEmpty,max=100"`
	Description string        `json:"description" binding:"max=2000"`
	BasePrice   int64         `json:"basePrice" binding:"gte=0"`
	Schema      model.JSONMap `json:"requirementSchema"`
}

// CreatePackage registers a new service package. Staff only. The requirement
// schema maps field names to expected scalar types and is validated at intake.
func (spc ServicePackageController) CreatePackage(ctx *gin.Context) {
	var body createPackageRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	for field, typeName := range body.Schema {
		name, ok := typeName.(string)
		if !ok || (name != "string" && name != "number" && name != "bool") {
			util.ResponseFailed(ctx, http.StatusBadRequest,
				"Requirement schema values must be \"string\", \"number\" or \"bool\"",
				util.GenerateErrorMessages(errors.New("invalid schema type for field "+field), field), nil)
			return
		}
	}

	pkg := model.ServicePackage{
		Name:              body.Name,
		Description:       body.Description,
		BasePrice:         body.BasePrice,
		RequirementSchema: body.Schema,
		IsActive:          true,
	}

	if err := spc.app.Repository.Package.Create(ctx, nil, &pkg); err != nil {
		spc.app.Logger.Errorf("Failed to create service package: %v", err)
		util.ResponseFailed(ctx, http.StatusConflict, "Package name already exists", util.GenerateErrorMessages(err, "name"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"package": pkg,
	})
}

// ListPackages returns the active packages. Public; the intake form reads it.
func (spc ServicePackageController) ListPackages(ctx *gin.Context) {
	packages, err := spc.app.Repository.Package.ListActive(ctx, nil)
	if err != nil {
		spc.app.Logger.Errorf("Failed to list service packages: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"packages": packages,
	})
}

func (spc ServicePackageController) GetPackageById(ctx *gin.Context) {
	pkg, err := spc.app.Repository.Package.GetById(ctx, nil, ctx.Param("packageId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Package not found", nil, nil)
			return
		}

		spc.app.Logger.Errorf("Failed to get service package: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"package": pkg,
	})
}
