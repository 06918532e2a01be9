// file: internals/features/academics/venues/dto/venue_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	m "reviewku_backend/internals/features/academics/venues/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ========== Requests ========== */

type CreateVenueRequest struct {
	VenueName       string         `json:"venue_name" validate:"required,max=200"`
	VenueCode       *string        `json:"venue_code" validate:"omitempty,max=50"`
	VenueLocation   *string        `json:"venue_location" validate:"omitempty,max=500"`
	VenueCapacity   *int           `json:"venue_capacity" validate:"omitempty,min=1"`
	VenueFacilities datatypes.JSON `json:"venue_facilities"`
}

func (r *CreateVenueRequest) ToModel() *m.VenueModel {
	v := &m.VenueModel{
		VenueName:     strings.TrimSpace(r.VenueName),
		VenueCode:     trimPtr(r.VenueCode),
		VenueLocation: trimPtr(r.VenueLocation),
		VenueCapacity: r.VenueCapacity,
		VenueIsActive: true,
	}
	if len(r.VenueFacilities) > 0 {
		v.VenueFacilities = r.VenueFacilities
	} else {
		v.VenueFacilities = datatypes.JSON([]byte("[]"))
	}
	return v
}

type UpdateVenueRequest struct {
	VenueName       *string         `json:"venue_name" validate:"omitempty,max=200"`
	VenueCode       *string         `json:"venue_code" validate:"omitempty,max=50"`
	VenueLocation   *string         `json:"venue_location" validate:"omitempty,max=500"`
	VenueCapacity   *int            `json:"venue_capacity" validate:"omitempty,min=1"`
	VenueFacilities *datatypes.JSON `json:"venue_facilities"`
	VenueIsActive   *bool           `json:"venue_is_active"`
}

func (r *UpdateVenueRequest) Apply(v *m.VenueModel) {
	if r.VenueName != nil {
		v.VenueName = strings.TrimSpace(*r.VenueName)
	}
	if r.VenueCode != nil {
		v.VenueCode = trimPtr(r.VenueCode)
	}
	if r.VenueLocation != nil {
		v.VenueLocation = trimPtr(r.VenueLocation)
	}
	if r.VenueCapacity != nil {
		v.VenueCapacity = r.VenueCapacity
	}
	if r.VenueFacilities != nil {
		v.VenueFacilities = *r.VenueFacilities
	}
	if r.VenueIsActive != nil {
		v.VenueIsActive = *r.VenueIsActive
	}
}
