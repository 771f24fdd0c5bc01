package scribearc

import (
	"testing"
	"time"
)

func riskProject(id string, status Status, deadline time.Time) *Project {
	return &Project{ID: id, Status: status, Deadline: deadline}
}

func TestFindAtRiskProjects(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	projects := []*Project{
		riskProject("due-in-10h", StatusInProgress, now.Add(10*time.Hour)),
		riskProject("complete-soon-due", StatusComplete, now.Add(10*time.Hour)),
		riskProject("overdue", StatusAssigned, now.Add(-1*time.Hour)),
		riskProject("due-in-5h", StatusReview, now.Add(5*time.Hour)),
		riskProject("far-out", StatusInProgress, now.Add(72*time.Hour)),
		riskProject("submitted-due", StatusSubmitted, now.Add(2*time.Hour)),
		riskProject("exactly-at-threshold", StatusInProgress, now.Add(48*time.Hour)),
	}

	atRisk := FindAtRiskProjects(projects, now, DefaultAtRiskThreshold)

	want := []string{"overdue", "due-in-5h", "due-in-10h", "exactly-at-threshold"}
	if len(atRisk) != len(want) {
		t.Fatalf("FindAtRiskProjects() returned %d projects, want %d", len(atRisk), len(want))
	}
	for i, id := range want {
		if atRisk[i].ID != id {
			t.Errorf("FindAtRiskProjects()[%d] = %s, want %s", i, atRisk[i].ID, id)
		}
	}
}

func TestFindAtRiskProjectsCustomThreshold(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	projects := []*Project{
		riskProject("due-in-10h", StatusInProgress, now.Add(10*time.Hour)),
		riskProject("due-in-30h", StatusInProgress, now.Add(30*time.Hour)),
	}

	atRisk := FindAtRiskProjects(projects, now, 24*time.Hour)
	if len(atRisk) != 1 || atRisk[0].ID != "due-in-10h" {
		t.Errorf("FindAtRiskProjects(24h) = %v, want only due-in-10h", atRisk)
	}
}

func TestShouldSendDeadlineWarning(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		lastWarnedAt *time.Time
		want         bool
	}{
		{"never warned", nil, true},
		{"warned 13h ago", timePtr(now.Add(-13 * time.Hour)), true},
		{"warned exactly 12h ago", timePtr(now.Add(-12 * time.Hour)), true},
		{"warned 1h ago", timePtr(now.Add(-1 * time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldSendDeadlineWarning(tt.lastWarnedAt, now); got != tt.want {
				t.Errorf("ShouldSendDeadlineWarning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
