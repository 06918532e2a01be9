// file: internals/features/sessions/lab_sessions/dto/lab_session_dto.go
package dto

import (
	"errors"
	"time"

	"github.com/google/uuid"

	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
	teamDTO "reviewku_backend/internals/features/teams/dto"
)

/* ===================== REQUESTS ===================== */

// BookSessionRequest: booking satu slot review.
type BookSessionRequest struct {
	ScopeID    uuid.UUID `json:"scope_id" validate:"required"`
	VenueID    uuid.UUID `json:"venue_id" validate:"required"`
	FacultyID  uuid.UUID `json:"faculty_id" validate:"required"`
	StartTime  time.Time `json:"start_time" validate:"required"`
	EndTime    time.Time `json:"end_time" validate:"required"`
	StudentIDs []string  `json:"student_ids" validate:"omitempty,dive,uuid"`
}

func (r *BookSessionRequest) ToModel() (*sessionModel.LabSessionModel, error) {
	if !r.StartTime.Before(r.EndTime) {
		return nil, errors.New("start_time harus sebelum end_time")
	}
	roster, err := teamDTO.NormalizeStudentIDs(r.StudentIDs)
	if err != nil {
		return nil, err
	}
	return &sessionModel.LabSessionModel{
		LabSessionScopeID:    r.ScopeID,
		LabSessionVenueID:    r.VenueID,
		LabSessionFacultyID:  r.FacultyID,
		LabSessionStartTime:  r.StartTime,
		LabSessionEndTime:    r.EndTime,
		LabSessionStudentIDs: roster,
	}, nil
}

// UpdateSessionRequest: ganti faculty dan/atau roster; dua-duanya opsional.
type UpdateSessionRequest struct {
	FacultyID  *uuid.UUID `json:"faculty_id,omitempty"`
	StudentIDs *[]string  `json:"student_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// CopyDayRequest: replikasi seluruh jadwal satu tanggal ke tanggal lain.
type CopyDayRequest struct {
	FromDate string     `json:"from_date" validate:"required"` // YYYY-MM-DD
	ToDate   string     `json:"to_date" validate:"required"`   // YYYY-MM-DD
	ScopeID  *uuid.UUID `json:"scope_id,omitempty"`
}

// SwapVenuesRequest: tukar venue A ↔ B untuk semua session di satu tanggal.
type SwapVenuesRequest struct {
	VenueA uuid.UUID `json:"venue_a" validate:"required"`
	VenueB uuid.UUID `json:"venue_b" validate:"required"`
	Date   string    `json:"date" validate:"required"` // YYYY-MM-DD
}

/* ===================== RESPONSES ===================== */

type SessionResponse struct {
	LabSessionID uuid.UUID `json:"lab_session_id"`
	ScopeID      uuid.UUID `json:"scope_id"`
	VenueID      uuid.UUID `json:"venue_id"`
	FacultyID    uuid.UUID `json:"faculty_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StudentIDs   []string  `json:"student_ids"`
}

func SessionFromModel(m *sessionModel.LabSessionModel) SessionResponse {
	return SessionResponse{
		LabSessionID: m.LabSessionID,
		ScopeID:      m.LabSessionScopeID,
		VenueID:      m.LabSessionVenueID,
		FacultyID:    m.LabSessionFacultyID,
		StartTime:    m.LabSessionStartTime,
		EndTime:      m.LabSessionEndTime,
		StudentIDs:   []string(m.LabSessionStudentIDs),
	}
}

func SessionsFromModels(ms []sessionModel.LabSessionModel) []SessionResponse {
	out := make([]SessionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, SessionFromModel(&ms[i]))
	}
	return out
}
