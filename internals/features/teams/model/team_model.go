// file: internals/features/teams/model/team_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// TeamModel merepresentasikan tabel teams. Satu team memiliki 0..1 project,
// roster student (uuid[]), dan dua slot faculty: guide + subject expert.
type TeamModel struct {
	// PK
	TeamID uuid.UUID `gorm:"column:team_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"team_id"`

	// Scope
	TeamScopeID uuid.UUID `gorm:"column:team_scope_id;type:uuid;not null" json:"team_scope_id"`

	TeamName   string     `gorm:"column:team_name;type:text;not null" json:"team_name"`
	TeamStatus TeamStatus `gorm:"column:team_status;type:text;not null;default:'PENDING'" json:"team_status"`

	// Fase tertinggi yang disubmit eksplisit oleh team
	TeamSubmissionPhase int `gorm:"column:team_submission_phase;not null;default:0" json:"team_submission_phase"`

	// Project (0..1)
	TeamProjectID *uuid.UUID `gorm:"column:team_project_id;type:uuid" json:"team_project_id,omitempty"`

	// Roster student
	TeamStudentIDs pq.StringArray `gorm:"column:team_student_ids;type:uuid[]" json:"team_student_ids"`

	// Guide & Subject Expert
	TeamGuideID      *uuid.UUID `gorm:"column:team_guide_id;type:uuid" json:"team_guide_id,omitempty"`
	TeamGuideStatus  RoleStatus `gorm:"column:team_guide_status;type:text;not null;default:'PENDING'" json:"team_guide_status"`
	TeamExpertID     *uuid.UUID `gorm:"column:team_expert_id;type:uuid" json:"team_expert_id,omitempty"`
	TeamExpertStatus RoleStatus `gorm:"column:team_expert_status;type:text;not null;default:'PENDING'" json:"team_expert_status"`

	// Timestamps
	TeamCreatedAt time.Time      `gorm:"column:team_created_at;type:timestamptz;not null;default:now()" json:"team_created_at"`
	TeamUpdatedAt time.Time      `gorm:"column:team_updated_at;type:timestamptz;not null;default:now()" json:"team_updated_at"`
	TeamDeletedAt gorm.DeletedAt `gorm:"column:team_deleted_at;index" json:"team_deleted_at,omitempty"`
}

// TableName overrides default table name.
func (TeamModel) TableName() string { return "teams" }

func (m *TeamModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.TeamUpdatedAt = time.Now()
	return nil
}

// HasStudent: cek keanggotaan student di roster.
func (m *TeamModel) HasStudent(studentID uuid.UUID) bool {
	want := studentID.String()
	for _, s := range m.TeamStudentIDs {
		if s == want {
			return true
		}
	}
	return false
}
