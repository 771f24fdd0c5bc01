package model

import "github.com/scribearc/scribearc/pkg/scribearc"

// ProjectHistory is an append-only audit record. Rows are never updated or
// deleted once written; cancelled projects keep their full history.
type ProjectHistory struct {
	BaseModel

	Action    string  `gorm:"type:varchar(50);not null;index" json:"action"`
	OldStatus *string `gorm:"type:varchar(20)" json:"oldStatus"`
	NewStatus *string `gorm:"type:varchar(20)" json:"newStatus"`
	Notes     string  `gorm:"type:text;not null;default:''" json:"notes"`

	// nil for system actions (e.g. the deadline sweeper)
	PerformedBy *string `gorm:"type:text" json:"performedBy"`

	ProjectID string  `gorm:"type:text;not null;index" json:"projectId"`
	Project   Project `json:"-"`
}

func (ph ProjectHistory) TableName() string {
	return "project_histories"
}

// NewProjectHistory converts an engine history entry into a persistable row.
func NewProjectHistory(projectID string, e scribearc.HistoryEntry) *ProjectHistory {
	ph := &ProjectHistory{
		ProjectID:   projectID,
		Action:      e.Action,
		Notes:       e.Notes,
		PerformedBy: e.PerformedBy,
	}

	if e.OldStatus != nil {
		s := string(*e.OldStatus)
		ph.OldStatus = &s
	}
	if e.NewStatus != nil {
		s := string(*e.NewStatus)
		ph.NewStatus = &s
	}

	return ph
}
