// file: internals/features/academics/scopes/model/scope_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeModel merepresentasikan tabel scopes: satu batch/siklus akademik
// beserta state timer-nya. Timer disimpan sebagai anchor (last_updated)
// + sisa detik; nilai "live" dihitung saat dibaca, bukan lewat background job.
type ScopeModel struct {
	// PK
	ScopeID uuid.UUID `gorm:"column:scope_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"scope_id"`

	// Identitas
	ScopeName           string `gorm:"column:scope_name;type:text;not null" json:"scope_name"`
	ScopeNumberOfPhases int    `gorm:"column:scope_number_of_phases;not null;default:1" json:"scope_number_of_phases"`

	// Timer
	ScopeTimerTotalHours       float64    `gorm:"column:scope_timer_total_hours;not null;default:0" json:"scope_timer_total_hours"`
	ScopeTimerRemainingSeconds int64      `gorm:"column:scope_timer_remaining_seconds;not null;default:0" json:"scope_timer_remaining_seconds"`
	ScopeTimerIsRunning        bool       `gorm:"column:scope_timer_is_running;not null;default:false" json:"scope_timer_is_running"`
	ScopeTimerLastUpdated      *time.Time `gorm:"column:scope_timer_last_updated;type:timestamptz" json:"scope_timer_last_updated,omitempty"`

	// Timestamps
	ScopeCreatedAt time.Time      `gorm:"column:scope_created_at;type:timestamptz;not null;default:now()" json:"scope_created_at"`
	ScopeUpdatedAt time.Time      `gorm:"column:scope_updated_at;type:timestamptz;not null;default:now()" json:"scope_updated_at"`
	ScopeDeletedAt gorm.DeletedAt `gorm:"column:scope_deleted_at;index" json:"scope_deleted_at,omitempty"`
}

// TableName overrides default table name.
func (ScopeModel) TableName() string { return "scopes" }

// BeforeUpdate: pastikan updated_at terisi current timestamp saat update lewat GORM.
func (m *ScopeModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.ScopeUpdatedAt = time.Now()
	return nil
}
