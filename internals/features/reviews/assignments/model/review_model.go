// file: internals/features/reviews/assignments/model/review_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ReviewStatus: status pengerjaan satu review per (team, phase).
type ReviewStatus string

const (
	ReviewStatusPending          ReviewStatus = "PENDING"
	ReviewStatusCompleted        ReviewStatus = "COMPLETED"
	ReviewStatusChangesRequired  ReviewStatus = "CHANGES_REQUIRED"
	ReviewStatusRejected         ReviewStatus = "REJECTED"
)

func (s ReviewStatus) Valid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusCompleted, ReviewStatusChangesRequired, ReviewStatusRejected:
		return true
	}
	return false
}

// Settled: review non-PENDING menutup fasenya.
func (s ReviewStatus) Settled() bool { return s.Valid() && s != ReviewStatusPending }

// ReviewModel merepresentasikan tabel reviews: hasil review faculty atas
// satu team pada satu fase. review_absent_student_ids menampung student yang
// ditandai absen eksplisit oleh faculty saat menyelesaikan review.
type ReviewModel struct {
	// PK
	ReviewID uuid.UUID `gorm:"column:review_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"review_id"`

	ReviewTeamID    uuid.UUID `gorm:"column:review_team_id;type:uuid;not null;index:idx_reviews_team_phase,priority:1" json:"review_team_id"`
	ReviewFacultyID uuid.UUID `gorm:"column:review_faculty_id;type:uuid;not null;index" json:"review_faculty_id"`
	ReviewPhase     int       `gorm:"column:review_phase;type:int;not null;index:idx_reviews_team_phase,priority:2" json:"review_phase"`

	ReviewStatus      ReviewStatus `gorm:"column:review_status;type:varchar(20);not null;default:'PENDING'" json:"review_status"`
	ReviewCompletedAt *time.Time   `gorm:"column:review_completed_at;type:timestamptz" json:"review_completed_at,omitempty"`

	// Absen eksplisit (set student id, boleh kosong)
	ReviewAbsentStudentIDs pq.StringArray `gorm:"column:review_absent_student_ids;type:uuid[]" json:"review_absent_student_ids,omitempty"`

	// Timestamps
	ReviewCreatedAt time.Time `gorm:"column:review_created_at;type:timestamptz;not null;default:now()" json:"review_created_at"`
	ReviewUpdatedAt time.Time `gorm:"column:review_updated_at;type:timestamptz;not null;default:now()" json:"review_updated_at"`
}

// TableName overrides default table name.
func (ReviewModel) TableName() string { return "reviews" }

func (m *ReviewModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ReviewUpdatedAt = time.Now()
	return nil
}
