package scribearc

import (
	"strings"
	"testing"
	"time"
)

var allStatuses = []Status{
	StatusSubmitted, StatusValidated, StatusAssigned, StatusInProgress,
	StatusReview, StatusComplete, StatusPaid, StatusRejected, StatusCancelled,
}

func strPtr(s string) *string { return &s }

func newTestProject(status Status) *Project {
	writerShare, adminShare, _ := ComputeSplit(2000, 0, 0)
	return &Project{
		ID:            "project-1",
		ReferenceCode: "SA-2026-00001",
		Status:        status,
		AgreedPrice:   2000,
		WriterShare:   writerShare,
		AdminShare:    adminShare,
		Deadline:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateTransition(t *testing.T) {
	allowed := map[[2]Status]Actor{
		{StatusSubmitted, StatusValidated}:  ActorStaff,
		{StatusSubmitted, StatusRejected}:   ActorStaff,
		{StatusSubmitted, StatusCancelled}:  ActorStaff,
		{StatusValidated, StatusAssigned}:   ActorStaff,
		{StatusValidated, StatusCancelled}:  ActorStaff,
		{StatusAssigned, StatusInProgress}:  ActorWriter,
		{StatusInProgress, StatusReview}:    ActorWriter,
		{StatusReview, StatusComplete}:      ActorStaff,
		{StatusReview, StatusInProgress}:    ActorStaff,
		{StatusComplete, StatusPaid}:        ActorStaff,
	}

	// every (from, to, actor) combination outside the table must fail,
	// including self-transitions and state skips
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			for _, actor := range []Actor{ActorStaff, ActorWriter, ActorSystem} {
				err := ValidateTransition(from, to, actor)
				wantActor, listed := allowed[[2]Status{from, to}]
				wantOk := listed && actor == wantActor

				if wantOk && err != nil {
					t.Errorf("ValidateTransition(%s, %s, %s) = %v, want nil", from, to, actor, err)
				}
				if !wantOk && !IsKind(err, KindInvalidTransition) {
					t.Errorf("ValidateTransition(%s, %s, %s) = %v, want kind %v", from, to, actor, err, KindInvalidTransition)
				}
			}
		}
	}
}

func TestApplyTransition(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("writes history with old and new status", func(t *testing.T) {
		p := newTestProject(StatusSubmitted)

		result, err := ApplyTransition(p, StatusValidated, ActorStaff, strPtr("staff-1"), "payment proof approved", now)
		if err != nil {
			t.Fatalf("ApplyTransition() unexpected error: %v", err)
		}

		if p.Status != StatusValidated {
			t.Errorf("status = %s, want %s", p.Status, StatusValidated)
		}
		if result.Entry.Action != ActionStatusChange {
			t.Errorf("entry action = %s, want %s", result.Entry.Action, ActionStatusChange)
		}
		if result.Entry.OldStatus == nil || *result.Entry.OldStatus != StatusSubmitted {
			t.Errorf("entry old status = %v, want %s", result.Entry.OldStatus, StatusSubmitted)
		}
		if result.Entry.NewStatus == nil || *result.Entry.NewStatus != StatusValidated {
			t.Errorf("entry new status = %v, want %s", result.Entry.NewStatus, StatusValidated)
		}
		if len(result.Intents) != 1 || result.Intents[0] != IntentNotifyClient {
			t.Errorf("intents = %v, want [%s]", result.Intents, IntentNotifyClient)
		}
	})

	t.Run("stamps completedAt on completion", func(t *testing.T) {
		p := newTestProject(StatusReview)

		if _, err := ApplyTransition(p, StatusComplete, ActorStaff, strPtr("staff-1"), "", now); err != nil {
			t.Fatalf("ApplyTransition() unexpected error: %v", err)
		}
		if p.CompletedAt == nil || !p.CompletedAt.Equal(now) {
			t.Errorf("completedAt = %v, want %v", p.CompletedAt, now)
		}
	})

	t.Run("rejects reordered transition", func(t *testing.T) {
		p := newTestProject(StatusAssigned)

		_, err := ApplyTransition(p, StatusReview, ActorWriter, strPtr("writer-1"), "", now)
		if !IsKind(err, KindInvalidTransition) {
			t.Fatalf("ApplyTransition() error = %v, want kind %v", err, KindInvalidTransition)
		}
		if p.Status != StatusAssigned {
			t.Errorf("status mutated to %s on failed transition", p.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		p := newTestProject(StatusSubmitted)

		_, err := ApplyTransition(p, Status("archived"), ActorStaff, nil, "", now)
		if !IsKind(err, KindValidationFailed) {
			t.Fatalf("ApplyTransition() error = %v, want kind %v", err, KindValidationFailed)
		}
	})
}

func TestAssignWriter(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("assigns and transitions", func(t *testing.T) {
		p := newTestProject(StatusValidated)

		result, err := AssignWriter(p, "writer-1", 2, 5, strPtr("staff-1"), now)
		if err != nil {
			t.Fatalf("AssignWriter() unexpected error: %v", err)
		}
		if p.Status != StatusAssigned {
			t.Errorf("status = %s, want %s", p.Status, StatusAssigned)
		}
		if p.WriterID == nil || *p.WriterID != "writer-1" {
			t.Errorf("writerID = %v, want writer-1", p.WriterID)
		}
		if len(result.Intents) != 2 {
			t.Errorf("intents = %v, want notify client and writer", result.Intents)
		}
	})

	t.Run("rejects writer at capacity", func(t *testing.T) {
		p := newTestProject(StatusValidated)

		_, err := AssignWriter(p, "writer-1", 5, 5, strPtr("staff-1"), now)
		if !IsKind(err, KindWriterAtCapacity) {
			t.Fatalf("AssignWriter() error = %v, want kind %v", err, KindWriterAtCapacity)
		}
	})

	t.Run("allows one below capacity", func(t *testing.T) {
		p := newTestProject(StatusValidated)

		if _, err := AssignWriter(p, "writer-1", 4, 5, strPtr("staff-1"), now); err != nil {
			t.Fatalf("AssignWriter() unexpected error: %v", err)
		}
	})

	t.Run("reassigns without status change", func(t *testing.T) {
		p := newTestProject(StatusInProgress)
		p.WriterID = strPtr("writer-1")

		result, err := AssignWriter(p, "writer-2", 0, 5, strPtr("staff-1"), now)
		if err != nil {
			t.Fatalf("AssignWriter() unexpected error: %v", err)
		}
		if p.Status != StatusInProgress {
			t.Errorf("status = %s, want unchanged %s", p.Status, StatusInProgress)
		}
		if p.WriterID == nil || *p.WriterID != "writer-2" {
			t.Errorf("writerID = %v, want writer-2", p.WriterID)
		}
		if result.Entry.Action != ActionWriterAssigned {
			t.Errorf("entry action = %s, want %s", result.Entry.Action, ActionWriterAssigned)
		}
		if result.Entry.NewStatus != nil {
			t.Errorf("entry new status = %v, want nil for reassignment", result.Entry.NewStatus)
		}
	})

	t.Run("rejects assignment from submitted", func(t *testing.T) {
		p := newTestProject(StatusSubmitted)

		_, err := AssignWriter(p, "writer-1", 0, 5, strPtr("staff-1"), now)
		if !IsKind(err, KindInvalidTransition) {
			t.Fatalf("AssignWriter() error = %v, want kind %v", err, KindInvalidTransition)
		}
	})
}

func TestAdjustPrice(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	t.Run("recomputes split and logs amounts", func(t *testing.T) {
		p := newTestProject(StatusValidated)

		result, err := AdjustPrice(p, 200, 0, strPtr("staff-1"), now)
		if err != nil {
			t.Fatalf("AdjustPrice() unexpected error: %v", err)
		}
		if p.WriterShare != 1080 || p.AdminShare != 720 {
			t.Errorf("split = %d/%d, want 1080/720", p.WriterShare, p.AdminShare)
		}
		if result.Entry.Action != ActionPriceAdjustment {
			t.Errorf("entry action = %s, want %s", result.Entry.Action, ActionPriceAdjustment)
		}
		for _, amount := range []string{"1200", "1080", "800", "720"} {
			if !strings.Contains(result.Entry.Notes, amount) {
				t.Errorf("entry notes %q missing before/after amount %s", result.Entry.Notes, amount)
			}
		}
	})

	t.Run("rejected in terminal status", func(t *testing.T) {
		for _, status := range []Status{StatusPaid, StatusRejected, StatusCancelled} {
			p := newTestProject(status)
			if _, err := AdjustPrice(p, 100, 0, nil, now); err == nil {
				t.Errorf("AdjustPrice() in %s succeeded, want error", status)
			}
		}
	})

	t.Run("rejects invalid amounts", func(t *testing.T) {
		p := newTestProject(StatusSubmitted)

		_, err := AdjustPrice(p, -1, 0, nil, now)
		if !IsKind(err, KindValidationFailed) {
			t.Fatalf("AdjustPrice() error = %v, want kind %v", err, KindValidationFailed)
		}
		if p.DiscountAmount != 0 {
			t.Errorf("discount mutated to %d on failed adjustment", p.DiscountAmount)
		}
	})
}

// full happy path from intake to settlement, with a price adjustment midway
func TestLifecycleEndToEnd(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	p := newTestProject(StatusSubmitted)

	if p.WriterShare != 1200 || p.AdminShare != 800 {
		t.Fatalf("initial split = %d/%d, want 1200/800", p.WriterShare, p.AdminShare)
	}

	if _, err := AdjustPrice(p, 200, 0, strPtr("staff-1"), now); err != nil {
		t.Fatalf("AdjustPrice() unexpected error: %v", err)
	}
	if p.WriterShare != 1080 || p.AdminShare != 720 {
		t.Fatalf("adjusted split = %d/%d, want 1080/720", p.WriterShare, p.AdminShare)
	}

	steps := []struct {
		to    Status
		actor Actor
	}{
		{StatusValidated, ActorStaff},
		{StatusAssigned, ActorStaff},
		{StatusInProgress, ActorWriter},
		{StatusReview, ActorWriter},
		{StatusComplete, ActorStaff},
		{StatusPaid, ActorStaff},
	}

	for _, step := range steps {
		if _, err := ApplyTransition(p, step.to, step.actor, strPtr("actor"), "", now); err != nil {
			t.Fatalf("ApplyTransition(-> %s) unexpected error: %v", step.to, err)
		}
	}

	if p.Status != StatusPaid {
		t.Errorf("final status = %s, want %s", p.Status, StatusPaid)
	}
	if p.WriterShare+p.AdminShare != p.AgreedPrice-p.DiscountAmount+p.AdditionalCharges {
		t.Errorf("ledger invariant broken: %d + %d != net", p.WriterShare, p.AdminShare)
	}
}

func TestSetEstimatedCompletion(t *testing.T) {
	// newTestProject deadline is 2026-09-10
	tests := []struct {
		name     string
		estimate time.Time
		wantErr  bool
	}{
		{
			name:     "before the deadline",
			estimate: time.Date(2026, 9, 8, 12, 0, 0, 0, time.UTC),
			wantErr:  false,
		},
		{
			name:     "exactly at the deadline",
			estimate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			wantErr:  false,
		},
		{
			name:     "after the deadline",
			estimate: time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProject(StatusAssigned)

			err := SetEstimatedCompletion(p, tt.estimate)
			if tt.wantErr {
				if !IsKind(err, KindValidationFailed) {
					t.Fatalf("SetEstimatedCompletion() error = %v, want kind %v", err, KindValidationFailed)
				}
				if p.EstimatedCompletionAt != nil {
					t.Error("estimate stored despite validation failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("SetEstimatedCompletion() unexpected error: %v", err)
			}
			if p.EstimatedCompletionAt == nil || !p.EstimatedCompletionAt.Equal(tt.estimate) {
				t.Errorf("EstimatedCompletionAt = %v, want %v", p.EstimatedCompletionAt, tt.estimate)
			}
		})
	}
}
