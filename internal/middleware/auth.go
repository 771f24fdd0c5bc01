package middleware

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/auth"
	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/util"
)

func (m Middleware) AuthMiddleware(ctx *gin.Context) {
	token, err := util.ReadBearerToken(ctx)
	if err != nil {
		m.app.Logger.Debugf("Failed to read token: %v", err)
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	claim, err := m.app.JWTService.VerifyJwtToken(token)
	if err != nil {
		m.app.Logger.Debugf("Failed to verify token: %v", err)
		util.ResponseFailed(ctx, 401, "Invalid token", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if claim.Type != constant.JWT_TYPE_ACCESS {
		m.app.Logger.Debugf("Invalid token type: %s", claim.Type)
		util.ResponseFailed(ctx, 401, "Invalid access token type", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	ctx.Set("user", claim.User)
	ctx.Next()
}

func getAuthUser(ctx *gin.Context) (*auth.JWTPayload, error) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, errors.New("user not found in context")
	}

	jsonUser, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	var authUser *auth.JWTPayload
	if err := json.Unmarshal(jsonUser, &authUser); err != nil {
		return nil, err
	}

	return authUser, nil
}

// RequireStaff allows admin and staff accounts through. Must run after
// AuthMiddleware.
func (m Middleware) RequireStaff(ctx *gin.Context) {
	m.requireRole(ctx, func(role constant.UserRole) bool {
		return role.IsStaff()
	})
}

// RequireWriter allows writer accounts through. Must run after AuthMiddleware.
func (m Middleware) RequireWriter(ctx *gin.Context) {
	m.requireRole(ctx, func(role constant.UserRole) bool {
		return role == constant.UserRoleWriter
	})
}

func (m Middleware) requireRole(ctx *gin.Context, allowed func(constant.UserRole) bool) {
	user, err := getAuthUser(ctx)
	if err != nil {
		util.ResponseFailed(ctx, 401, "", util.GenerateErrorMessages(err, "unauthorized"), nil)
		ctx.Abort()
		return
	}

	if !allowed(user.Role) {
		m.app.Logger.Debugf("Role %s not allowed for %s %s", user.Role, ctx.Request.Method, ctx.Request.URL.Path)
		util.ResponseFailed(ctx, 403, "Forbidden", util.GenerateErrorMessages(nil, "forbidden"), nil)
		ctx.Abort()
		return
	}

	ctx.Next()
}
