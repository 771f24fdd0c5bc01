package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	appcontext "github.com/scribearc/scribearc/internal/app_context"
	"github.com/scribearc/scribearc/internal/auth"
	"github.com/scribearc/scribearc/internal/repository"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

type baseController struct {
	app *appcontext.Application
}

type Controller struct {
	Index    *IndexController
	Auth     *AuthController
	User     *UserController
	Client   *ClientController
	Package  *ServicePackageController
	Project  *ProjectController
	Tracking *TrackingController
}

func newBaseController(app *appcontext.Application) *baseController {
	return &baseController{app: app}
}

func NewController(app *appcontext.Application) *Controller {
	bc := newBaseController(app)

	return &Controller{
		Index:    &IndexController{baseController: bc},
		Auth:     &AuthController{baseController: bc},
		User:     &UserController{baseController: bc},
		Client:   &ClientController{baseController: bc},
		Package:  &ServicePackageController{baseController: bc},
		Project:  &ProjectController{baseController: bc},
		Tracking: &TrackingController{baseController: bc},
	}
}

func (b *baseController) getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	err = json.Unmarshal(jsonUser, &authUser)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return authUser, nil
}

// httpStatusForError maps engine error kinds and repository sentinels to HTTP
// status codes. Unknown errors are treated as internal.
func httpStatusForError(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrStatusConflict):
		return http.StatusConflict
	}

	switch scribearc.KindOf(err) {
	case scribearc.KindValidationFailed:
		return http.StatusBadRequest
	case scribearc.KindNotFound:
		return http.StatusNotFound
	case scribearc.KindInvalidTransition, scribearc.KindWriterAtCapacity:
		return http.StatusConflict
	case scribearc.KindTooManyAttempts:
		return http.StatusTooManyRequests
	}

	return http.StatusInternalServerError
}
