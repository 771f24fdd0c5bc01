package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/util"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	*baseController
}

type createUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"firstName" binding:"required,strNotEmpty,max=50"`
	LastName  string `json:"lastName" binding:"required,strNotEmpty,max=50"`
	Role      string `json:"role" binding:"required,oneof=admin staff writer"`

	// ignored unless role is writer; 0 keeps the model default
	MaxActiveProjects int `json:"maxActiveProjects" binding:"gte=0,lte=100"`
}

// CreateUser registers a staff or writer account. Admin only.
func (uc UserController) CreateUser(ctx *gin.Context) {
	var body createUserRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.app.Logger.Errorf("Failed to hash password: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	user := model.User{
		Email:        body.Email,
		PasswordHash: string(hash),
		FirstName:    body.FirstName,
		LastName:     body.LastName,
		Role:         constant.UserRole(body.Role),
		IsActive:     true,
	}
	if body.MaxActiveProjects > 0 {
		user.MaxActiveProjects = body.MaxActiveProjects
	}

	if err := uc.app.Repository.User.Create(ctx, nil, &user); err != nil {
		uc.app.Logger.Errorf("Failed to create user: %v", err)
		util.ResponseFailed(ctx, http.StatusConflict, "Email already registered", util.GenerateErrorMessages(err, "email"), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"user": user,
	})
}

// ListWriters returns the active writers with their current load, for the
// staff assignment picker.
func (uc UserController) ListWriters(ctx *gin.Context) {
	writers, err := uc.app.Repository.User.ListWriters(ctx, nil)
	if err != nil {
		uc.app.Logger.Errorf("Failed to list writers: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	type writerLoad struct {
		*model.User
		ActiveProjects int64 `json:"activeProjects"`
	}

	out := make([]writerLoad, 0, len(writers))
	for _, w := range writers {
		count, err := uc.app.Repository.Project.CountActiveByWriter(ctx, nil, w.ID)
		if err != nil {
			uc.app.Logger.Errorf("Failed to count active projects for writer %s: %v", w.ID, err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
			return
		}

		out = append(out, writerLoad{User: w, ActiveProjects: count})
	}

	util.ResponseSuccess(ctx, gin.H{
		"writers": out,
	})
}
