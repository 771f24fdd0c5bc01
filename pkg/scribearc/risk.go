package scribearc

import (
	"sort"
	"time"
)

const (
	// DefaultAtRiskThreshold is how close to its deadline an active project
	// must be to count as at risk.
	DefaultAtRiskThreshold = 48 * time.Hour

	// DeadlineWarningCooldown is the minimum gap between two deadline-warning
	// notifications for the same project.
	DeadlineWarningCooldown = 12 * time.Hour
)

// FindAtRiskProjects returns the projects that are active and within threshold
// of their deadline, including already-overdue ones, sorted most urgent first.
func FindAtRiskProjects(projects []*Project, now time.Time, threshold time.Duration) []*Project {
	if threshold <= 0 {
		threshold = DefaultAtRiskThreshold
	}

	var atRisk []*Project
	for _, p := range projects {
		if !p.Status.Active() {
			continue
		}
		if p.Deadline.Sub(now) <= threshold {
			atRisk = append(atRisk, p)
		}
	}

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].Deadline.Before(atRisk[j].Deadline)
	})

	return atRisk
}

// ShouldSendDeadlineWarning applies the notification cooldown. lastWarnedAt is
// the timestamp of the project's most recent deadline_warning history entry,
// nil if it has never been warned.
func ShouldSendDeadlineWarning(lastWarnedAt *time.Time, now time.Time) bool {
	if lastWarnedAt == nil {
		return true
	}

	return now.Sub(*lastWarnedAt) >= DeadlineWarningCooldown
}
