// file: internals/features/academics/venues/model/venue_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// VenueModel merepresentasikan tabel venues (ruang review/lab fisik).
type VenueModel struct {
	// PK
	VenueID uuid.UUID `gorm:"column:venue_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"venue_id"`

	VenueName     string  `gorm:"column:venue_name;type:text;not null" json:"venue_name"`
	VenueCode     *string `gorm:"column:venue_code;type:text" json:"venue_code,omitempty"`
	VenueLocation *string `gorm:"column:venue_location;type:text" json:"venue_location,omitempty"`
	VenueCapacity *int    `gorm:"column:venue_capacity" json:"venue_capacity,omitempty"`

	VenueFacilities datatypes.JSON `gorm:"column:venue_facilities;type:jsonb;not null;default:'[]'" json:"venue_facilities"`
	VenueIsActive   bool           `gorm:"column:venue_is_active;not null;default:true" json:"venue_is_active"`

	// Timestamps
	VenueCreatedAt time.Time      `gorm:"column:venue_created_at;type:timestamptz;not null;default:now()" json:"venue_created_at"`
	VenueUpdatedAt time.Time      `gorm:"column:venue_updated_at;type:timestamptz;not null;default:now()" json:"venue_updated_at"`
	VenueDeletedAt gorm.DeletedAt `gorm:"column:venue_deleted_at;index" json:"venue_deleted_at,omitempty"`
}

// TableName overrides default table name.
func (VenueModel) TableName() string { return "venues" }

func (m *VenueModel) BeforeUpdate(tx *gorm.DB) (err error) {
	m.VenueUpdatedAt = time.Now()
	return nil
}
