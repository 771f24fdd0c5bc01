package scribearc

type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusValidated  Status = "validated"
	StatusAssigned   Status = "assigned"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusComplete   Status = "complete"
	StatusPaid       Status = "paid"
	StatusRejected   Status = "rejected"
	StatusCancelled  Status = "cancelled"
)

type Actor string

const (
	ActorStaff  Actor = "staff"
	ActorWriter Actor = "writer"
	ActorSystem Actor = "system"
)

// Intent is a side effect the caller should carry out after committing a
// transition. Delivery is best-effort and never rolls the transition back.
type Intent string

const (
	IntentNotifyClient Intent = "notify_client"
	IntentNotifyWriter Intent = "notify_writer"
	IntentNotifyAdmin  Intent = "notify_admin"
)

type transitionRule struct {
	actor   Actor
	intents []Intent
}

// transitionTable is the single source of truth for legal status changes.
// Anything not listed here fails with KindInvalidTransition.
var transitionTable = map[Status]map[Status]transitionRule{
	StatusSubmitted: {
		StatusValidated: {actor: ActorStaff, intents: []Intent{IntentNotifyClient}},
		StatusRejected:  {actor: ActorStaff, intents: []Intent{IntentNotifyClient}},
		StatusCancelled: {actor: ActorStaff},
	},
	StatusValidated: {
		StatusAssigned:  {actor: ActorStaff, intents: []Intent{IntentNotifyClient, IntentNotifyWriter}},
		StatusCancelled: {actor: ActorStaff},
	},
	StatusAssigned: {
		StatusInProgress: {actor: ActorWriter},
	},
	StatusInProgress: {
		StatusReview: {actor: ActorWriter},
	},
	StatusReview: {
		StatusComplete:   {actor: ActorStaff, intents: []Intent{IntentNotifyClient}},
		StatusInProgress: {actor: ActorStaff},
	},
	StatusComplete: {
		StatusPaid: {actor: ActorStaff},
	},
}

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusValidated, StatusAssigned, StatusInProgress,
		StatusReview, StatusComplete, StatusPaid, StatusRejected, StatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transitions leave s. Rejected projects
// may be resubmitted, but that is a human-mediated action outside the table.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusRejected || s == StatusCancelled
}

// Active reports whether a writer is currently expected to be working on the
// project. Active projects are the ones the risk scanner looks at.
func (s Status) Active() bool {
	return s == StatusAssigned || s == StatusInProgress || s == StatusReview
}
