package models

import "strings"

// ProjectStatus is the closed set of statuses the projects table accepts.
type ProjectStatus string

const (
	StatusActive        ProjectStatus = "active"
	StatusCompleted     ProjectStatus = "completed"
	StatusOnHold        ProjectStatus = "on-hold"
	StatusCancelled     ProjectStatus = "cancelled"
	StatusUnderRevision ProjectStatus = "under-revision"
)

// validStatuses is the membership set for NormalizeStatus.
var validStatuses = map[ProjectStatus]struct{}{
	StatusActive:        {},
	StatusCompleted:     {},
	StatusOnHold:        {},
	StatusCancelled:     {},
	StatusUnderRevision: {},
}

// NormalizeStatus maps an arbitrary incoming status string into the closed
// set. Unrecognized values silently coerce to active - the UI supports richer
// workflow labels (planning, in-progress, review) that all collapse to active
// for storage, with the original label retained separately for display.
func NormalizeStatus(status string) ProjectStatus {
	if _, ok := validStatuses[ProjectStatus(status)]; ok {
		return ProjectStatus(status)
	}
	return StatusActive
}

// DisplayStatus reconstructs a human label from the stored status and the
// retained original label. The one special case: a project stored as active
// whose original label was "in-progress" displays as "In Progress".
func DisplayStatus(status ProjectStatus, originalStatus string) string {
	if status == StatusActive && originalStatus == "in-progress" {
		return "In Progress"
	}
	return titleCase(string(status))
}

// titleCase turns "on-hold" into "On Hold".
func titleCase(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
