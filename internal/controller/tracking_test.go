package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	accessgate "github.com/scribearc/scribearc/internal/access_gate"
	appcontext "github.com/scribearc/scribearc/internal/app_context"
	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

func recordVerificationFailure(t *testing.T, err error) (int, util.Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	tc := TrackingController{baseController: &baseController{app: &appcontext.Application{}}}
	tc.respondVerificationFailure(ctx, err)

	var resp util.Response
	if decodeErr := json.Unmarshal(w.Body.Bytes(), &resp); decodeErr != nil {
		t.Fatalf("failed to decode response body: %v", decodeErr)
	}

	return w.Code, resp
}

func TestRespondVerificationFailure(t *testing.T) {
	gate := accessgate.NewGate(accessgate.NewMemorySessionStore(), config.TrackingConfig{
		VerifiedTTL:    6 * time.Hour,
		AttemptTTL:     30 * time.Minute,
		MaxPinAttempts: 3,
	}, nil)
	ctx := context.Background()

	// PIN for this phone is 5678
	wrongPinErr := gate.VerifyPin(ctx, "session-1", "project-1", "012345678", "0000")
	if !scribearc.IsKind(wrongPinErr, scribearc.KindNotFound) {
		t.Fatalf("wrong-pin error = %v, want kind %v", wrongPinErr, scribearc.KindNotFound)
	}

	t.Run("unknown secret and wrong pin are indistinguishable", func(t *testing.T) {
		secretCode, secretResp := recordVerificationFailure(t, gorm.ErrRecordNotFound)
		pinCode, pinResp := recordVerificationFailure(t, wrongPinErr)

		if secretCode != pinCode {
			t.Errorf("status codes differ: unknown secret %d, wrong pin %d", secretCode, pinCode)
		}
		if secretResp.Message != pinResp.Message {
			t.Errorf("messages differ: unknown secret %q, wrong pin %q", secretResp.Message, pinResp.Message)
		}
		if secretCode != http.StatusNotFound {
			t.Errorf("status = %d, want %d", secretCode, http.StatusNotFound)
		}
		if secretResp.Message != "Verification failed" {
			t.Errorf("message = %q, want %q", secretResp.Message, "Verification failed")
		}
	})

	t.Run("lockout keeps the generic message", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			gate.VerifyPin(ctx, "session-1", "project-1", "012345678", "0000")
		}

		lockErr := gate.VerifyPin(ctx, "session-1", "project-1", "012345678", "5678")
		if !scribearc.IsKind(lockErr, scribearc.KindTooManyAttempts) {
			t.Fatalf("locked error = %v, want kind %v", lockErr, scribearc.KindTooManyAttempts)
		}

		code, resp := recordVerificationFailure(t, lockErr)
		if code != http.StatusTooManyRequests {
			t.Errorf("status = %d, want %d", code, http.StatusTooManyRequests)
		}
		if resp.Message != "Verification failed" {
			t.Errorf("message = %q, want %q", resp.Message, "Verification failed")
		}
	})
}
