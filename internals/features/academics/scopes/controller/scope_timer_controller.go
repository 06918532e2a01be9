// file: internals/features/academics/scopes/controller/scope_timer_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"

	d "reviewku_backend/internals/features/academics/scopes/dto"
	m "reviewku_backend/internals/features/academics/scopes/model"
	svc "reviewku_backend/internals/features/academics/scopes/service"
)

// "now" dibaca sekali per request lalu dipakai semua sub-perhitungan,
// supaya tidak ada drift antar langkah dalam satu transaksi.

func (ctl *ScopeController) timerStatus(s m.ScopeModel, now time.Time) d.TimerStatusResponse {
	remaining := svc.CurrentRemaining(s, now)
	return d.TimerStatusResponse{
		ScopeID:          s.ScopeID.String(),
		RemainingSeconds: remaining,
		IsRunning:        s.ScopeTimerIsRunning,
		TotalHours:       s.ScopeTimerTotalHours,
		Exhausted:        remaining == 0,
		LastUpdated:      s.ScopeTimerLastUpdated,
	}
}

// POST /:id/timer/start
func (ctl *ScopeController) StartTimer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	now := time.Now()

	var out d.TimerStatusResponse
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		s, er := findScope(tx, id)
		if er != nil {
			return er
		}
		svc.StartTimer(s, now)
		if er := tx.Save(s).Error; er != nil {
			return er
		}
		out = ctl.timerStatus(*s, now)
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Timer started", out)
}

// POST /:id/timer/pause
func (ctl *ScopeController) PauseTimer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	now := time.Now()

	var out d.TimerStatusResponse
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		s, er := findScope(tx, id)
		if er != nil {
			return er
		}
		svc.PauseTimer(s, now)
		if er := tx.Save(s).Error; er != nil {
			return er
		}
		out = ctl.timerStatus(*s, now)
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Timer paused", out)
}

// POST /:id/timer/reset
func (ctl *ScopeController) ResetTimer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.ResetTimerRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
		if ctl.Validate != nil {
			if err := ctl.Validate.Struct(req); err != nil {
				return helper.JsonError(c, http.StatusBadRequest, err.Error())
			}
		}
	}
	now := time.Now()

	var out d.TimerStatusResponse
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		s, er := findScope(tx, id)
		if er != nil {
			return er
		}
		svc.ResetTimer(s, req.TotalHours)
		// Save melewatkan kolom nil; pakai Select supaya anchor ikut ter-null-kan
		if er := tx.Model(s).Select(
			"scope_timer_total_hours",
			"scope_timer_remaining_seconds",
			"scope_timer_is_running",
			"scope_timer_last_updated",
		).Updates(map[string]any{
			"scope_timer_total_hours":       s.ScopeTimerTotalHours,
			"scope_timer_remaining_seconds": s.ScopeTimerRemainingSeconds,
			"scope_timer_is_running":        s.ScopeTimerIsRunning,
			"scope_timer_last_updated":      nil,
		}).Error; er != nil {
			return er
		}
		out = ctl.timerStatus(*s, now)
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Timer reset", out)
}

// GET /:id/timer — baca murni, tanpa mutasi state.
func (ctl *ScopeController) GetTimer(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	s, err := findScope(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", ctl.timerStatus(*s, time.Now()))
}
