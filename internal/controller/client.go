package controller

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/repository"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

type ClientController struct {
	*baseController
}

type registerClientRequest struct {
	Name  string `json:"name" binding:"required,strNotEmpty,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=4,max=30"`

	// referral code of an existing client, optional
	ReferredBy string `json:"referredBy" binding:"omitempty,max=8"`
}

// RegisterClient creates a client record and mints their referral code. The
// last 4 digits of the phone double as the tracking-view PIN, so the phone is
// required at registration.
func (cc ClientController) RegisterClient(ctx *gin.Context) {
	var body registerClientRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "", util.GenerateErrorMessages(err), nil)
		return
	}

	if scribearc.PinFromPhone(body.Phone) == "" {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Phone number must contain at least 4 digits", nil, nil)
		return
	}

	var referredBy *string
	if body.ReferredBy != "" {
		normalized := scribearc.NormalizeReferralCode(body.ReferredBy)

		referrer, err := cc.app.Repository.Client.GetByReferralCode(ctx, nil, normalized)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				util.ResponseFailed(ctx, http.StatusBadRequest, "Unknown referral code", nil, nil)
				return
			}

			cc.app.Logger.Errorf("Failed to resolve referral code %s: %v", normalized, err)
			util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
			return
		}

		referredBy = &referrer.ReferralCode
	}

	client := model.Client{
		Name:       body.Name,
		Email:      body.Email,
		Phone:      body.Phone,
		ReferredBy: referredBy,
	}

	// the unique index on referral_code arbitrates concurrent registrations;
	// on a collision the generator retries with a fresh candidate
	reserve := func(code string) error {
		client.ReferralCode = code

		err := cc.app.Repository.Client.Create(ctx, nil, &client)
		if repository.IsUniqueViolation(err) {
			return scribearc.ErrCodeTaken
		}

		return err
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	if _, err := scribearc.GenerateUniqueReferralCode(
		body.Name, reserve, scribearc.DefaultReferralCodeAttempts, time.Now(), rnd,
	); err != nil {
		cc.app.Logger.Errorf("Failed to create client: %v", err)
		util.ResponseFailed(ctx, httpStatusForError(err), "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"client": client,
	})
}

// LookupReferralCode lets the intake form confirm a referral code before
// submitting. Only the referrer's first name is exposed.
func (cc ClientController) LookupReferralCode(ctx *gin.Context) {
	code := scribearc.NormalizeReferralCode(ctx.Param("code"))

	client, err := cc.app.Repository.Client.GetByReferralCode(ctx, nil, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.ResponseFailed(ctx, http.StatusNotFound, "Unknown referral code", nil, nil)
			return
		}

		cc.app.Logger.Errorf("Failed to look up referral code %s: %v", code, err)
		util.ResponseFailed(ctx, http.StatusInternalServerError, "", util.GenerateErrorMessages(err), nil)
		return
	}

	util.ResponseSuccess(ctx, gin.H{
		"referralCode": client.ReferralCode,
		"referrerName": client.Name,
	})
}
