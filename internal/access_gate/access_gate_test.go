package accessgate

import (
	"context"
	"testing"
	"time"

	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/pkg/scribearc"
)

func newTestGate() *Gate {
	return NewGate(NewMemorySessionStore(), config.TrackingConfig{
		VerifiedTTL:    6 * time.Hour,
		AttemptTTL:     30 * time.Minute,
		MaxPinAttempts: 3,
	}, nil)
}

const (
	testPhone = "012345678" // PIN 5678
	testPin   = "5678"
)

func TestVerifyPin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct pin verifies session", func(t *testing.T) {
		gate := newTestGate()

		if err := gate.VerifyPin(ctx, "session-1", "project-1", testPhone, testPin); err != nil {
			t.Fatalf("VerifyPin() unexpected error: %v", err)
		}

		verified, err := gate.IsVerified(ctx, "session-1", "project-1")
		if err != nil {
			t.Fatalf("IsVerified() unexpected error: %v", err)
		}
		if !verified {
			t.Error("IsVerified() = false after successful verification")
		}
	})

	t.Run("wrong pin fails without revealing the reason", func(t *testing.T) {
		gate := newTestGate()

		err := gate.VerifyPin(ctx, "session-1", "project-1", testPhone, "0000")
		if !scribearc.IsKind(err, scribearc.KindNotFound) {
			t.Fatalf("VerifyPin() error = %v, want kind %v", err, scribearc.KindNotFound)
		}

		verified, _ := gate.IsVerified(ctx, "session-1", "project-1")
		if verified {
			t.Error("IsVerified() = true after failed verification")
		}
	})

	t.Run("locks session after third failure even with correct pin", func(t *testing.T) {
		gate := newTestGate()

		for i := 0; i < 3; i++ {
			if err := gate.VerifyPin(ctx, "session-1", "project-1", testPhone, "0000"); !scribearc.IsKind(err, scribearc.KindNotFound) {
				t.Fatalf("attempt %d: error = %v, want kind %v", i+1, err, scribearc.KindNotFound)
			}
		}

		err := gate.VerifyPin(ctx, "session-1", "project-1", testPhone, testPin)
		if !scribearc.IsKind(err, scribearc.KindTooManyAttempts) {
			t.Fatalf("4th attempt error = %v, want kind %v", err, scribearc.KindTooManyAttempts)
		}
	})

	t.Run("fresh session may attempt again", func(t *testing.T) {
		gate := newTestGate()

		for i := 0; i < 3; i++ {
			gate.VerifyPin(ctx, "session-1", "project-1", testPhone, "0000")
		}

		if err := gate.VerifyPin(ctx, "session-2", "project-1", testPhone, testPin); err != nil {
			t.Fatalf("fresh session VerifyPin() unexpected error: %v", err)
		}
	})

	t.Run("verification is scoped to the project", func(t *testing.T) {
		gate := newTestGate()

		if err := gate.VerifyPin(ctx, "session-1", "project-1", testPhone, testPin); err != nil {
			t.Fatalf("VerifyPin() unexpected error: %v", err)
		}

		verified, _ := gate.IsVerified(ctx, "session-1", "project-2")
		if verified {
			t.Error("IsVerified() = true for a different project")
		}
	})

	t.Run("phone with too few digits never verifies", func(t *testing.T) {
		gate := newTestGate()

		err := gate.VerifyPin(ctx, "session-1", "project-1", "12", "0012")
		if !scribearc.IsKind(err, scribearc.KindNotFound) {
			t.Fatalf("VerifyPin() error = %v, want kind %v", err, scribearc.KindNotFound)
		}
	})
}
