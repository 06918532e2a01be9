// file: internals/features/reviews/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
)

/* ===================== REQUESTS ===================== */

// AssignFacultyRequest: assign manual satu faculty ke (project, phase).
type AssignFacultyRequest struct {
	ProjectID       uuid.UUID  `json:"project_id" validate:"required"`
	FacultyID       uuid.UUID  `json:"faculty_id" validate:"required"`
	Phase           int        `json:"phase" validate:"required,min=1"`
	AccessStartsAt  *time.Time `json:"access_starts_at,omitempty"`
	AccessExpiresAt *time.Time `json:"access_expires_at,omitempty"`
	Mode            string     `json:"mode" validate:"omitempty,oneof=ONLINE OFFLINE"`
}

// ModeOrDefault: assign manual default OFFLINE.
func (r *AssignFacultyRequest) ModeOrDefault() reviewModel.AssignmentMode {
	if r.Mode == "" {
		return reviewModel.AssignmentModeOffline
	}
	return reviewModel.AssignmentMode(r.Mode)
}

// TransferReviewRequest: pindahkan review PENDING satu team ke faculty baru.
// Phase opsional; kosong = dihitung dari ComputeNextPhase.
type TransferReviewRequest struct {
	NewFacultyID uuid.UUID `json:"new_faculty_id" validate:"required"`
	Phase        *int      `json:"phase,omitempty" validate:"omitempty,min=1"`
}

// AutoAssignRequest: batch auto-assign dari lab session.
type AutoAssignRequest struct {
	TeamIDs []uuid.UUID `json:"team_ids" validate:"required,min=1,dive,required"`
}

// CompleteReviewRequest: faculty menyelesaikan review PENDING miliknya.
type CompleteReviewRequest struct {
	Status           string   `json:"status" validate:"required,oneof=COMPLETED CHANGES_REQUIRED REJECTED"`
	AbsentStudentIDs []string `json:"absent_student_ids,omitempty" validate:"omitempty,dive,uuid"`
}

/* ===================== RESPONSES ===================== */

type AssignmentResponse struct {
	ReviewAssignmentID uuid.UUID  `json:"review_assignment_id"`
	ProjectID          uuid.UUID  `json:"project_id"`
	FacultyID          uuid.UUID  `json:"faculty_id"`
	Phase              int        `json:"phase"`
	AccessStartsAt     *time.Time `json:"access_starts_at,omitempty"`
	AccessExpiresAt    *time.Time `json:"access_expires_at,omitempty"`
	Mode               string     `json:"mode"`
	AssignedAt         time.Time  `json:"assigned_at"`
	AssignedBy         *uuid.UUID `json:"assigned_by,omitempty"`
	Expired            bool       `json:"expired"`
}

func AssignmentFromModel(m *reviewModel.ReviewAssignmentModel, now time.Time) AssignmentResponse {
	return AssignmentResponse{
		ReviewAssignmentID: m.ReviewAssignmentID,
		ProjectID:          m.ReviewAssignmentProjectID,
		FacultyID:          m.ReviewAssignmentFacultyID,
		Phase:              m.ReviewAssignmentPhase,
		AccessStartsAt:     m.ReviewAssignmentAccessStartsAt,
		AccessExpiresAt:    m.ReviewAssignmentAccessExpiresAt,
		Mode:               string(m.ReviewAssignmentMode),
		AssignedAt:         m.ReviewAssignmentAssignedAt,
		AssignedBy:         m.ReviewAssignmentAssignedBy,
		Expired:            m.Expired(now),
	}
}

func AssignmentsFromModels(ms []reviewModel.ReviewAssignmentModel, now time.Time) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, AssignmentFromModel(&ms[i], now))
	}
	return out
}

type ReviewResponse struct {
	ReviewID         uuid.UUID  `json:"review_id"`
	TeamID           uuid.UUID  `json:"team_id"`
	FacultyID        uuid.UUID  `json:"faculty_id"`
	Phase            int        `json:"phase"`
	Status           string     `json:"status"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	AbsentStudentIDs []string   `json:"absent_student_ids,omitempty"`
}

func ReviewFromModel(m *reviewModel.ReviewModel) ReviewResponse {
	return ReviewResponse{
		ReviewID:         m.ReviewID,
		TeamID:           m.ReviewTeamID,
		FacultyID:        m.ReviewFacultyID,
		Phase:            m.ReviewPhase,
		Status:           string(m.ReviewStatus),
		CompletedAt:      m.ReviewCompletedAt,
		AbsentStudentIDs: []string(m.ReviewAbsentStudentIDs),
	}
}
