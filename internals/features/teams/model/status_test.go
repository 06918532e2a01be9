package model

import "testing"

func TestTeamStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from TeamStatus
		to   TeamStatus
		want bool
	}{
		{"pending can be approved", TeamStatusPending, TeamStatusApproved, true},
		{"pending can be rejected", TeamStatusPending, TeamStatusRejected, true},
		{"pending cannot jump to completed", TeamStatusPending, TeamStatusCompleted, false},
		{"in progress to ready for review", TeamStatusInProgress, TeamStatusReadyForReview, true},
		{"ready for review to completed", TeamStatusReadyForReview, TeamStatusCompleted, true},
		{"changes required back to in progress", TeamStatusChangesRequired, TeamStatusInProgress, true},
		{"completed is terminal", TeamStatusCompleted, TeamStatusInProgress, false},
		{"rejected is terminal", TeamStatusRejected, TeamStatusApproved, false},
		{"not completed can resume", TeamStatusNotCompleted, TeamStatusInProgress, true},
		{"self transition not allowed", TeamStatusInProgress, TeamStatusInProgress, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s→%s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTeamStatusValid(t *testing.T) {
	for _, s := range []TeamStatus{
		TeamStatusPending, TeamStatusApproved, TeamStatusNotCompleted,
		TeamStatusInProgress, TeamStatusChangesRequired, TeamStatusReadyForReview,
		TeamStatusCompleted, TeamStatusRejected,
	} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if TeamStatus("BOGUS").Valid() {
		t.Error("BOGUS should be invalid")
	}
}

func TestForceStatusBypassesTable(t *testing.T) {
	tm := TeamModel{TeamStatus: TeamStatusCompleted}
	tm.ForceStatus(TeamStatusInProgress)
	if tm.TeamStatus != TeamStatusInProgress {
		t.Errorf("ForceStatus did not override: %s", tm.TeamStatus)
	}
}
