// file: internals/features/academics/scopes/dto/scope_dto.go
package dto

import (
	"strings"
	"time"

	m "reviewku_backend/internals/features/academics/scopes/model"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

// Create
type CreateScopeRequest struct {
	ScopeName            string  `json:"scope_name" validate:"required,max=200"`
	ScopeNumberOfPhases  int     `json:"scope_number_of_phases" validate:"required,min=1"`
	ScopeTimerTotalHours float64 `json:"scope_timer_total_hours" validate:"omitempty,gte=0"`
}

func (r *CreateScopeRequest) ToModel() *m.ScopeModel {
	s := &m.ScopeModel{
		ScopeName:            strings.TrimSpace(r.ScopeName),
		ScopeNumberOfPhases:  r.ScopeNumberOfPhases,
		ScopeTimerTotalHours: r.ScopeTimerTotalHours,
	}
	// timer lahir dalam keadaan reset
	s.ScopeTimerRemainingSeconds = int64(r.ScopeTimerTotalHours * 3600)
	return s
}

// Patch (partial update)
type UpdateScopeRequest struct {
	ScopeName           *string `json:"scope_name" validate:"omitempty,max=200"`
	ScopeNumberOfPhases *int    `json:"scope_number_of_phases" validate:"omitempty,min=1"`
}

func (r *UpdateScopeRequest) Apply(s *m.ScopeModel) {
	if r.ScopeName != nil {
		s.ScopeName = strings.TrimSpace(*r.ScopeName)
	}
	if r.ScopeNumberOfPhases != nil {
		s.ScopeNumberOfPhases = *r.ScopeNumberOfPhases
	}
}

// Reset timer (jam opsional; nil = pakai total tersimpan)
type ResetTimerRequest struct {
	TotalHours *float64 `json:"total_hours" validate:"omitempty,gt=0"`
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type ScopeResponse struct {
	ScopeID              string  `json:"scope_id"`
	ScopeName            string  `json:"scope_name"`
	ScopeNumberOfPhases  int     `json:"scope_number_of_phases"`
	ScopeTimerTotalHours float64 `json:"scope_timer_total_hours"`
	ScopeTimerIsRunning  bool    `json:"scope_timer_is_running"`
}

func FromModel(s m.ScopeModel) ScopeResponse {
	return ScopeResponse{
		ScopeID:              s.ScopeID.String(),
		ScopeName:            s.ScopeName,
		ScopeNumberOfPhases:  s.ScopeNumberOfPhases,
		ScopeTimerTotalHours: s.ScopeTimerTotalHours,
		ScopeTimerIsRunning:  s.ScopeTimerIsRunning,
	}
}

func FromModels(list []m.ScopeModel) []ScopeResponse {
	out := make([]ScopeResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromModel(s))
	}
	return out
}

// Status timer "live" (dihitung saat baca)
type TimerStatusResponse struct {
	ScopeID          string     `json:"scope_id"`
	RemainingSeconds int64      `json:"remaining_seconds"`
	IsRunning        bool       `json:"is_running"`
	TotalHours       float64    `json:"total_hours"`
	Exhausted        bool       `json:"exhausted"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
}
