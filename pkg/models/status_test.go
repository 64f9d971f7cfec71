package models

import "testing"

func TestNormalizeStatus_Identity(t *testing.T) {
	for _, s := range []ProjectStatus{StatusActive, StatusCompleted, StatusOnHold, StatusCancelled, StatusUnderRevision} {
		if got := NormalizeStatus(string(s)); got != s {
			t.Errorf("NormalizeStatus(%q) = %q, want identity", s, got)
		}
	}
}

func TestNormalizeStatus_CoercesToActive(t *testing.T) {
	cases := []string{"in-progress", "planning", "review", "", "ACTIVE", "done", "???"}
	for _, in := range cases {
		if got := NormalizeStatus(in); got != StatusActive {
			t.Errorf("NormalizeStatus(%q) = %q, want active", in, got)
		}
	}
}

func TestNormalizeStatus_Closure(t *testing.T) {
	// Whatever goes in, the result is a member of the closed set.
	inputs := []string{"active", "weird", "on-hold", "on hold", "Under-Revision", "cancelled"}
	for _, in := range inputs {
		got := NormalizeStatus(in)
		if _, ok := validStatuses[got]; !ok {
			t.Errorf("NormalizeStatus(%q) = %q, not in closed set", in, got)
		}
	}
}

func TestDisplayStatus(t *testing.T) {
	cases := []struct {
		status   ProjectStatus
		original string
		want     string
	}{
		{StatusActive, "in-progress", "In Progress"},
		{StatusActive, "planning", "Active"},
		{StatusActive, "", "Active"},
		{StatusOnHold, "in-progress", "On Hold"},
		{StatusUnderRevision, "", "Under Revision"},
		{StatusCompleted, "completed", "Completed"},
		{StatusCancelled, "", "Cancelled"},
	}
	for _, tc := range cases {
		if got := DisplayStatus(tc.status, tc.original); got != tc.want {
			t.Errorf("DisplayStatus(%q, %q) = %q, want %q", tc.status, tc.original, got, tc.want)
		}
	}
}
