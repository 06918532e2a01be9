// file: internals/features/academics/scopes/service/timer_service.go
package service

import (
	"time"

	"reviewku_backend/internals/helpers/collegetime"

	m "reviewku_backend/internals/features/academics/scopes/model"
)

// State machine timer: RUNNING ⇄ PAUSED. Semua fungsi di sini murni mutasi
// struct; controller yang menyimpan ke DB dalam satu transaksi.

// StartTimer menyalakan timer dan menandai anchor "now".
func StartTimer(s *m.ScopeModel, now time.Time) {
	s.ScopeTimerIsRunning = true
	s.ScopeTimerLastUpdated = &now
}

// PauseTimer membekukan sisa waktu: elapsed dihitung hanya dari jam kerja
// kampus sejak anchor terakhir, lalu dikurangkan (floor di 0).
func PauseTimer(s *m.ScopeModel, now time.Time) {
	if !s.ScopeTimerIsRunning {
		return
	}
	if s.ScopeTimerLastUpdated != nil {
		elapsed := collegetime.CollegeSecondsBetween(*s.ScopeTimerLastUpdated, now)
		s.ScopeTimerRemainingSeconds -= elapsed
		if s.ScopeTimerRemainingSeconds < 0 {
			s.ScopeTimerRemainingSeconds = 0
		}
	}
	s.ScopeTimerIsRunning = false
	s.ScopeTimerLastUpdated = &now
}

// ResetTimer mengisi ulang sisa waktu dari totalHours (atau nilai tersimpan
// bila nil), mematikan timer, dan menghapus anchor.
func ResetTimer(s *m.ScopeModel, totalHours *float64) {
	hours := s.ScopeTimerTotalHours
	if totalHours != nil {
		hours = *totalHours
		s.ScopeTimerTotalHours = hours
	}
	s.ScopeTimerRemainingSeconds = int64(hours * 3600)
	s.ScopeTimerIsRunning = false
	s.ScopeTimerLastUpdated = nil
}

// CurrentRemaining: baca murni, tanpa mutasi. Saat running, sisa = stored -
// elapsed jam kerja sejak anchor, tidak pernah negatif. Habisnya waktu
// adalah fakta saat query, bukan event (tidak ada auto-pause).
func CurrentRemaining(s m.ScopeModel, now time.Time) int64 {
	if !s.ScopeTimerIsRunning || s.ScopeTimerLastUpdated == nil {
		return s.ScopeTimerRemainingSeconds
	}
	remaining := s.ScopeTimerRemainingSeconds - collegetime.CollegeSecondsBetween(*s.ScopeTimerLastUpdated, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
