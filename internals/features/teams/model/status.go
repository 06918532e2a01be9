// file: internals/features/teams/model/status.go
package model

// Status team dan status role guide/expert sebagai tipe tertutup dengan
// tabel transisi eksplisit: transisi ilegal ditolak sebelum menyentuh DB.

type TeamStatus string

const (
	TeamStatusPending         TeamStatus = "PENDING"
	TeamStatusApproved        TeamStatus = "APPROVED"
	TeamStatusNotCompleted    TeamStatus = "NOT_COMPLETED"
	TeamStatusInProgress      TeamStatus = "IN_PROGRESS"
	TeamStatusChangesRequired TeamStatus = "CHANGES_REQUIRED"
	TeamStatusReadyForReview  TeamStatus = "READY_FOR_REVIEW"
	TeamStatusCompleted       TeamStatus = "COMPLETED"
	TeamStatusRejected        TeamStatus = "REJECTED"
)

var teamStatusTransitions = map[TeamStatus][]TeamStatus{
	TeamStatusPending:         {TeamStatusApproved, TeamStatusRejected},
	TeamStatusApproved:        {TeamStatusInProgress, TeamStatusNotCompleted},
	TeamStatusInProgress:      {TeamStatusReadyForReview, TeamStatusChangesRequired, TeamStatusNotCompleted},
	TeamStatusChangesRequired: {TeamStatusInProgress, TeamStatusReadyForReview},
	TeamStatusReadyForReview:  {TeamStatusInProgress, TeamStatusChangesRequired, TeamStatusCompleted},
	TeamStatusNotCompleted:    {TeamStatusInProgress},
	// COMPLETED & REJECTED terminal
	TeamStatusCompleted: {},
	TeamStatusRejected:  {},
}

func (s TeamStatus) Valid() bool {
	_, ok := teamStatusTransitions[s]
	return ok
}

// CanTransitionTo: cek tabel transisi. Sinkronisasi sesi lab memakai
// jalur paksa tersendiri (lihat ForceStatus), bukan tabel ini.
func (s TeamStatus) CanTransitionTo(next TeamStatus) bool {
	for _, allowed := range teamStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ForceStatus dipakai alur internal (sync sesi lab) yang memang boleh
// menimpa status tanpa melewati tabel transisi.
func (m *TeamModel) ForceStatus(next TeamStatus) {
	m.TeamStatus = next
}

type RoleStatus string

const (
	RoleStatusPending  RoleStatus = "PENDING"
	RoleStatusApproved RoleStatus = "APPROVED"
	RoleStatusRejected RoleStatus = "REJECTED"
)

func (s RoleStatus) Valid() bool {
	switch s {
	case RoleStatusPending, RoleStatusApproved, RoleStatusRejected:
		return true
	}
	return false
}
