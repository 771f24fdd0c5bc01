package scribearc

import (
	"fmt"
	"time"
)

// Project is the engine's view of a project. The engine is pure: callers fetch
// the current row, let the engine validate and mutate this copy, then commit it
// together with the returned history entry. The commit must be conditional on
// the status still matching what was read (the repository owns that CAS).
type Project struct {
	ID            string
	ReferenceCode string

	Status   Status
	WriterID *string

	// amounts in cents
	AgreedPrice       int64
	DiscountAmount    int64
	AdditionalCharges int64
	WriterShare       int64
	AdminShare        int64

	Deadline              time.Time
	EstimatedCompletionAt *time.Time
	CompletedAt           *time.Time
}

// History actions. Free-form tags; these are the ones the engine emits.
const (
	ActionProjectCreated  = "project_created"
	ActionStatusChange    = "status_change"
	ActionWriterAssigned  = "writer_assigned"
	ActionPriceAdjustment = "price_adjustment"
	ActionDeadlineWarning = "deadline_warning"
	ActionNote            = "note"
)

// HistoryEntry is an append-only audit record. Never mutated once written.
type HistoryEntry struct {
	Action      string
	OldStatus   *Status
	NewStatus   *Status
	Notes       string
	PerformedBy *string
	CreatedAt   time.Time
}

// TransitionResult bundles what the caller must persist (the entry, atomically
// with the project) and what it should do afterwards (the intents).
type TransitionResult struct {
	Entry   HistoryEntry
	Intents []Intent
}

// ValidateTransition reports whether from -> to is listed in the transition
// table for the given actor.
func ValidateTransition(from, to Status, actor Actor) error {
	rules, ok := transitionTable[from]
	if !ok {
		return newError(KindInvalidTransition, "no transitions allowed from status %q (attempted %q -> %q)", from, from, to)
	}

	rule, ok := rules[to]
	if !ok {
		return newError(KindInvalidTransition, "transition %q -> %q is not allowed", from, to)
	}

	if rule.actor != actor {
		return newError(KindInvalidTransition, "transition %q -> %q requires actor %q, got %q", from, to, rule.actor, actor)
	}

	return nil
}

// ApplyTransition validates and applies a status change on p, returning the
// audit entry and side-effect intents. completedAt is stamped on entry into
// the complete status. The engine assumes p.Status is the true current status;
// replay safety comes from the persistence layer's conditional update.
func ApplyTransition(p *Project, to Status, actor Actor, performedBy *string, notes string, now time.Time) (*TransitionResult, error) {
	if !to.Valid() {
		return nil, newError(KindValidationFailed, "unknown status %q", to)
	}

	if err := ValidateTransition(p.Status, to, actor); err != nil {
		return nil, err
	}

	rule := transitionTable[p.Status][to]
	from := p.Status

	p.Status = to
	if to == StatusComplete {
		completedAt := now
		p.CompletedAt = &completedAt
	}

	return &TransitionResult{
		Entry: HistoryEntry{
			Action:      ActionStatusChange,
			OldStatus:   &from,
			NewStatus:   &to,
			Notes:       notes,
			PerformedBy: performedBy,
			CreatedAt:   now,
		},
		Intents: rule.intents,
	}, nil
}

// AssignWriter bundles the validated -> assigned transition with the writer
// capacity check. activeCount is the writer's number of projects currently in
// an active status, maxActive that writer's configured cap. Reassigning an
// already-assigned project to a different writer logs history but does not
// re-enter the state table.
func AssignWriter(p *Project, writerID string, activeCount, maxActive int, performedBy *string, now time.Time) (*TransitionResult, error) {
	if writerID == "" {
		return nil, newError(KindValidationFailed, "writer id must not be empty")
	}

	if activeCount >= maxActive {
		return nil, newError(KindWriterAtCapacity, "writer %s has %d active projects (max %d)", writerID, activeCount, maxActive)
	}

	// reassignment: writer already on the project, no status change
	if p.WriterID != nil && p.Status.Active() {
		oldWriter := *p.WriterID
		p.WriterID = &writerID

		return &TransitionResult{
			Entry: HistoryEntry{
				Action:      ActionWriterAssigned,
				Notes:       fmt.Sprintf("reassigned from writer %s to writer %s", oldWriter, writerID),
				PerformedBy: performedBy,
				CreatedAt:   now,
			},
			Intents: []Intent{IntentNotifyWriter},
		}, nil
	}

	result, err := ApplyTransition(p, StatusAssigned, ActorStaff, performedBy, fmt.Sprintf("assigned to writer %s", writerID), now)
	if err != nil {
		return nil, err
	}

	p.WriterID = &writerID

	return result, nil
}

// SetEstimatedCompletion records the writer's completion estimate. An estimate
// past the project deadline is rejected.
func SetEstimatedCompletion(p *Project, estimate time.Time) error {
	if estimate.After(p.Deadline) {
		return newError(KindValidationFailed, "estimated completion %s falls after the deadline %s",
			estimate.Format(time.RFC3339), p.Deadline.Format(time.RFC3339))
	}

	p.EstimatedCompletionAt = &estimate

	return nil
}

// AdjustPrice updates the price-affecting fields and recomputes the revenue
// split. Allowed in any non-terminal status. The before/after amounts are
// recorded in the history notes.
func AdjustPrice(p *Project, discountAmount, additionalCharges int64, performedBy *string, now time.Time) (*TransitionResult, error) {
	if p.Status.Terminal() {
		return nil, newError(KindValidationFailed, "price adjustment not allowed in terminal status %q", p.Status)
	}

	writerShare, adminShare, err := ComputeSplit(p.AgreedPrice, discountAmount, additionalCharges)
	if err != nil {
		return nil, err
	}

	notes := fmt.Sprintf(
		"discount %d -> %d, charges %d -> %d, writer share %d -> %d, admin share %d -> %d",
		p.DiscountAmount, discountAmount,
		p.AdditionalCharges, additionalCharges,
		p.WriterShare, writerShare,
		p.AdminShare, adminShare,
	)

	p.DiscountAmount = discountAmount
	p.AdditionalCharges = additionalCharges
	p.WriterShare = writerShare
	p.AdminShare = adminShare

	return &TransitionResult{
		Entry: HistoryEntry{
			Action:      ActionPriceAdjustment,
			Notes:       notes,
			PerformedBy: performedBy,
			CreatedAt:   now,
		},
	}, nil
}
