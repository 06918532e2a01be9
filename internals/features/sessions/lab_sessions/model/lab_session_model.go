// file: internals/features/sessions/lab_sessions/model/lab_session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// LabSessionModel merepresentasikan tabel lab_sessions: satu slot review
// fisik (venue × faculty × rentang waktu × roster student).
// Invariant: sesi-sesi milik satu faculty tidak boleh overlap; venue boleh
// dipakai beberapa faculty sekaligus.
type LabSessionModel struct {
	// PK
	LabSessionID uuid.UUID `gorm:"column:lab_session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"lab_session_id"`

	// Scope & resource
	LabSessionScopeID   uuid.UUID `gorm:"column:lab_session_scope_id;type:uuid;not null" json:"lab_session_scope_id"`
	LabSessionVenueID   uuid.UUID `gorm:"column:lab_session_venue_id;type:uuid;not null" json:"lab_session_venue_id"`
	LabSessionFacultyID uuid.UUID `gorm:"column:lab_session_faculty_id;type:uuid;not null" json:"lab_session_faculty_id"`

	// Rentang waktu (half-open [start, end))
	LabSessionStartTime time.Time `gorm:"column:lab_session_start_time;type:timestamptz;not null" json:"lab_session_start_time"`
	LabSessionEndTime   time.Time `gorm:"column:lab_session_end_time;type:timestamptz;not null" json:"lab_session_end_time"`

	// Roster student (set, tanpa duplikat)
	LabSessionStudentIDs pq.StringArray `gorm:"column:lab_session_student_ids;type:uuid[]" json:"lab_session_student_ids"`

	// Timestamps
	LabSessionCreatedAt time.Time      `gorm:"column:lab_session_created_at;type:timestamptz;not null;default:now()" json:"lab_session_created_at"`
	LabSessionUpdatedAt time.Time      `gorm:"column:lab_session_updated_at;type:timestamptz;not null;default:now()" json:"lab_session_updated_at"`
	LabSessionDeletedAt gorm.DeletedAt `gorm:"column:lab_session_deleted_at;index" json:"lab_session_deleted_at,omitempty"`
}

// TableName overrides default table name.
func (LabSessionModel) TableName() string { return "lab_sessions" }

func (m *LabSessionModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.LabSessionUpdatedAt = time.Now()
	return nil
}
