// file: internals/features/teams/dto/team_dto.go
package dto

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "reviewku_backend/internals/features/teams/model"
)

/* =========================================================
   Helpers
   ========================================================= */

// NormalizeStudentIDs: validasi uuid + dedup (roster adalah set, bukan list).
func NormalizeStudentIDs(raw []string) (pq.StringArray, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make(pq.StringArray, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, errors.New("student id tidak valid: " + s)
		}
		key := id.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	return out, nil
}

/* =========================================================
   1) REQUESTS
   ========================================================= */

type CreateTeamRequest struct {
	TeamName       string   `json:"team_name" validate:"required,max=200"`
	TeamScopeID    string   `json:"team_scope_id" validate:"required,uuid"`
	TeamStudentIDs []string `json:"team_student_ids" validate:"required,min=1,dive,uuid"`
}

func (r *CreateTeamRequest) ToModel() (*m.TeamModel, error) {
	scopeID, err := uuid.Parse(strings.TrimSpace(r.TeamScopeID))
	if err != nil {
		return nil, errors.New("team_scope_id tidak valid")
	}
	students, err := NormalizeStudentIDs(r.TeamStudentIDs)
	if err != nil {
		return nil, err
	}
	return &m.TeamModel{
		TeamScopeID:      scopeID,
		TeamName:         strings.TrimSpace(r.TeamName),
		TeamStatus:       m.TeamStatusPending,
		TeamStudentIDs:   students,
		TeamGuideStatus:  m.RoleStatusPending,
		TeamExpertStatus: m.RoleStatusPending,
	}, nil
}

type UpdateTeamRequest struct {
	TeamName       *string   `json:"team_name" validate:"omitempty,max=200"`
	TeamStudentIDs *[]string `json:"team_student_ids" validate:"omitempty,min=1,dive,uuid"`
	TeamProjectID  *string   `json:"team_project_id" validate:"omitempty,uuid"`
}

func (r *UpdateTeamRequest) Apply(t *m.TeamModel) error {
	if r.TeamName != nil {
		t.TeamName = strings.TrimSpace(*r.TeamName)
	}
	if r.TeamStudentIDs != nil {
		students, err := NormalizeStudentIDs(*r.TeamStudentIDs)
		if err != nil {
			return err
		}
		t.TeamStudentIDs = students
	}
	if r.TeamProjectID != nil {
		id, err := uuid.Parse(strings.TrimSpace(*r.TeamProjectID))
		if err != nil {
			return errors.New("team_project_id tidak valid")
		}
		t.TeamProjectID = &id
	}
	return nil
}

// Perubahan status manual (dijaga tabel transisi)
type UpdateTeamStatusRequest struct {
	TeamStatus string `json:"team_status" validate:"required"`
}

// Pilih guide / expert
type SelectFacultyRequest struct {
	FacultyID string `json:"faculty_id" validate:"required,uuid"`
}

// Submit untuk review pada fase tertentu
type SubmitForReviewRequest struct {
	Phase int `json:"phase" validate:"required,min=1"`
}

// Bulk status update
type BulkStatusItem struct {
	TeamID     string `json:"team_id" validate:"required,uuid"`
	TeamStatus string `json:"team_status" validate:"required"`
}

type BulkStatusUpdateRequest struct {
	Items []BulkStatusItem `json:"items" validate:"required,min=1,dive"`
}
