// file: internals/features/reviews/assignments/model/review_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentMode menandai asal jendela akses faculty.
type AssignmentMode string

const (
	// AssignmentModeOnline: akses terikat slot lab session terjadwal.
	AssignmentModeOnline AssignmentMode = "ONLINE"
	// AssignmentModeOffline: akses administratif, berlaku sampai expired.
	AssignmentModeOffline AssignmentMode = "OFFLINE"
)

func (m AssignmentMode) Valid() bool {
	return m == AssignmentModeOnline || m == AssignmentModeOffline
}

// ReviewAssignmentModel merepresentasikan tabel review_assignments: jendela
// akses faculty terhadap satu project pada satu fase review.
// Unik pada (project_id, faculty_id, review_phase) — assign ulang = upsert.
type ReviewAssignmentModel struct {
	// PK
	ReviewAssignmentID uuid.UUID `gorm:"column:review_assignment_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"review_assignment_id"`

	// Unique triple
	ReviewAssignmentProjectID uuid.UUID `gorm:"column:review_assignment_project_id;type:uuid;not null;uniqueIndex:uq_review_assignment_triple,priority:1" json:"review_assignment_project_id"`
	ReviewAssignmentFacultyID uuid.UUID `gorm:"column:review_assignment_faculty_id;type:uuid;not null;uniqueIndex:uq_review_assignment_triple,priority:2" json:"review_assignment_faculty_id"`
	ReviewAssignmentPhase     int       `gorm:"column:review_assignment_phase;type:int;not null;uniqueIndex:uq_review_assignment_triple,priority:3" json:"review_assignment_phase"`

	// Jendela akses (nullable = tidak dibatasi di sisi itu)
	ReviewAssignmentAccessStartsAt  *time.Time `gorm:"column:review_assignment_access_starts_at;type:timestamptz" json:"review_assignment_access_starts_at,omitempty"`
	ReviewAssignmentAccessExpiresAt *time.Time `gorm:"column:review_assignment_access_expires_at;type:timestamptz" json:"review_assignment_access_expires_at,omitempty"`

	ReviewAssignmentMode AssignmentMode `gorm:"column:review_assignment_mode;type:varchar(10);not null;default:'OFFLINE'" json:"review_assignment_mode"`

	// Audit
	ReviewAssignmentAssignedAt time.Time  `gorm:"column:review_assignment_assigned_at;type:timestamptz;not null;default:now()" json:"review_assignment_assigned_at"`
	ReviewAssignmentAssignedBy *uuid.UUID `gorm:"column:review_assignment_assigned_by;type:uuid" json:"review_assignment_assigned_by,omitempty"`

	// Timestamps
	ReviewAssignmentCreatedAt time.Time `gorm:"column:review_assignment_created_at;type:timestamptz;not null;default:now()" json:"review_assignment_created_at"`
	ReviewAssignmentUpdatedAt time.Time `gorm:"column:review_assignment_updated_at;type:timestamptz;not null;default:now()" json:"review_assignment_updated_at"`
}

// TableName overrides default table name.
func (ReviewAssignmentModel) TableName() string { return "review_assignments" }

func (m *ReviewAssignmentModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ReviewAssignmentUpdatedAt = time.Now()
	return nil
}

// Expired true bila jendela akses sudah lewat pada instant now.
func (m *ReviewAssignmentModel) Expired(now time.Time) bool {
	return m.ReviewAssignmentAccessExpiresAt != nil &&
		m.ReviewAssignmentAccessExpiresAt.Before(now)
}
