package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

// TrackingController serves the anonymous client tracking view. A project is
// addressed by its tracking secret; the public summary needs nothing else,
// the full detail additionally needs PIN verification through the access gate.
type TrackingController struct {
	*baseController
}

const sessionTokenHeader = "X-Tracking-Session"

// CreateSession issues a viewer session token. The token scopes the PIN
// attempt counter and the verified marker.
func (tc TrackingController) CreateSession(ctx *gin.Context) {
	sessionToken, err := util.GenerateSessionToken()
	if err != nil {
		tc.app.Logger.Errorf("Failed to generate tracking session token: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"sessionToken": sessionToken,
	})
}

// resolveSecret fetches the project behind a tracking secret. Callers must
// keep the failure response generic so it does not confirm secret validity.
func (tc TrackingController) resolveSecret(ctx *gin.Context) (*model.Project, bool) {
	project, err := tc.app.Repository.Project.GetByTrackingSecret(ctx, nil, ctx.Param("secret"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Project not found", nil, nil)
			return nil, false
		}

		tc.app.Logger.Errorf("Failed to resolve tracking secret: %v", err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return nil, false
	}

	return project, true
}

// GetSummary returns the public fields: status, package, deadline, submission
// date. No PIN required.
func (tc TrackingController) GetSummary(ctx *gin.Context) {
	project, ok := tc.resolveSecret(ctx)
	if !ok {
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"referenceCode": project.ReferenceCode,
		"status":        project.Status,
		"packageName":   project.Package.Name,
		"deadline":      project.Deadline,
		"submittedAt":   project.CreatedAt,
	})
}

type verifyPinRequest struct {
	SessionToken string `json:"sessionToken" binding:"required"`
	Pin          string `json:"pin" binding:"required,len=4,numeric"`
}

// respondVerificationFailure collapses every PIN-verification failure into the
// same generic response. An unknown tracking secret and a wrong PIN must be
// indistinguishable here, otherwise the endpoint confirms which secrets exist.
func (tc TrackingController) respondVerificationFailure(ctx *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) || scribearc.IsKind(err, scribearc.KindNotFound) {
		util.ResponseFailed(ctx, http.StatusNotFound, "Verification failed", nil, nil)
		return
	}
	if scribearc.IsKind(err, scribearc.KindTooManyAttempts) {
		util.ResponseFailed(ctx, http.StatusTooManyRequests, "Verification failed", nil, nil)
		return
	}

	tc.app.Logger.Errorf("PIN verification error: %v", err)
	util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
}

// VerifyPin checks the 4-digit PIN (last 4 digits of the client phone) for
// this session. Wrong PIN and unknown secret produce the same generic failure,
// so the secret is resolved here instead of through resolveSecret.
func (tc TrackingController) VerifyPin(ctx *gin.Context) {
	var body verifyPinRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	project, err := tc.app.Repository.Project.GetByTrackingSecret(ctx, nil, ctx.Param("secret"))
	if err != nil {
		tc.respondVerificationFailure(ctx, err)
		return
	}

	if err := tc.app.Gate.VerifyPin(ctx, body.SessionToken, project.ID, project.Client.Phone, body.Pin); err != nil {
		tc.respondVerificationFailure(ctx, err)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"verified": true,
	})
}

// GetDetail returns the client-facing project detail. Requires a session that
// has passed PIN verification; the writer payout split stays internal.
func (tc TrackingController) GetDetail(ctx *gin.Context) {
	sessionToken := ctx.GetHeader(sessionTokenHeader)
	if sessionToken == "" {
		util.ResponseFailed(ctx, http.StatusUnauthorized, "Missing tracking session", nil, nil)
		return
	}

	project, ok := tc.resolveSecret(ctx)
	if !ok {
		return
	}

	verified, err := tc.app.Gate.IsVerified(ctx, sessionToken, project.ID)
	if err != nil {
		tc.app.Logger.Errorf("Failed to check verification for project %s: %v", project.ID, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if !verified {
		util.ResponseFailed(ctx, http.StatusForbidden, "PIN verification required", nil, nil)
		return
	}

	netAmount := project.AgreedPrice - project.DiscountAmount + project.AdditionalCharges

	util.ResponseSuccess(ctx, gin.H{
		"referenceCode":         project.ReferenceCode,
		"status":                project.Status,
		"title":                 project.Title,
		"packageName":           project.Package.Name,
		"requirements":          project.Requirements,
		"deadline":              project.Deadline,
		"estimatedCompletionAt": project.EstimatedCompletionAt,
		"completedAt":           project.CompletedAt,
		"submittedAt":           project.CreatedAt,
		"agreedPrice":           project.AgreedPrice,
		"discountAmount":        project.DiscountAmount,
		"additionalCharges":     project.AdditionalCharges,
		"totalAmount":           netAmount,
		"clientName":            project.Client.Name,
	})
}
