package accessgate

import (
	"context"

	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"go.uber.org/zap"
)

// Gate lets an anonymous client unlock the non-public fields of their own
// project with the tracking secret plus a weak 4-digit PIN (the last 4 digits
// of the phone number on file). The only state it keeps is the per-session
// attempt counter and verified marker, held in a short-TTL store. A fresh
// session resets the attempt count; that soft limit is deliberate, the data
// behind it is low-stakes and a durable lockout would lock real clients out.
type Gate struct {
	store  SessionStore
	cfg    config.TrackingConfig
	logger *zap.SugaredLogger
}

// SessionStore holds ephemeral per-viewer-session state. Redis in production;
// tests use the in-memory implementation. Keys are scoped to
// (session token, project id).
type SessionStore interface {
	IncrementAttempts(ctx context.Context, sessionToken, projectID string) (int, error)
	Attempts(ctx context.Context, sessionToken, projectID string) (int, error)
	MarkVerified(ctx context.Context, sessionToken, projectID string) error
	IsVerified(ctx context.Context, sessionToken, projectID string) (bool, error)
}

func NewGate(store SessionStore, cfg config.TrackingConfig, logger *zap.SugaredLogger) *Gate {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &Gate{store: store, cfg: cfg, logger: logger}
}

// VerifyPin checks a submitted PIN for the project the caller already resolved
// from a tracking secret. Wrong PINs fail with KindNotFound so the response
// cannot reveal whether the secret or the PIN was the wrong part. Once the
// session has accumulated the maximum number of failures, every further
// attempt fails with KindTooManyAttempts, correct PIN or not.
func (g *Gate) VerifyPin(ctx context.Context, sessionToken, projectID, phone, pin string) error {
	attempts, err := g.store.Attempts(ctx, sessionToken, projectID)
	if err != nil {
		return err
	}

	if attempts >= g.cfg.MaxPinAttempts {
		g.logger.Debugf("PIN attempt limit reached for session %s on project %s", sessionToken, projectID)
		return &scribearc.Error{Kind: scribearc.KindTooManyAttempts, Message: "too many verification attempts, start a new session"}
	}

	if !scribearc.PinMatches(scribearc.PinFromPhone(phone), pin) {
		if _, err := g.store.IncrementAttempts(ctx, sessionToken, projectID); err != nil {
			g.logger.Errorf("Failed to record PIN attempt: %v", err)
		}

		return &scribearc.Error{Kind: scribearc.KindNotFound, Message: "verification failed"}
	}

	if err := g.store.MarkVerified(ctx, sessionToken, projectID); err != nil {
		return err
	}

	return nil
}

// IsVerified reports whether the session has already passed PIN verification
// for the project and the marker has not expired.
func (g *Gate) IsVerified(ctx context.Context, sessionToken, projectID string) (bool, error) {
	return g.store.IsVerified(ctx, sessionToken, projectID)
}
