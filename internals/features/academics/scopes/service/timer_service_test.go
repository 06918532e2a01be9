package service

import (
	"testing"
	"time"

	m "reviewku_backend/internals/features/academics/scopes/model"
)

func date(y int, mo time.Month, d, hh, mm int) time.Time {
	return time.Date(y, mo, d, hh, mm, 0, 0, time.UTC)
}

func newScope(remaining int64, running bool, anchor *time.Time) m.ScopeModel {
	return m.ScopeModel{
		ScopeTimerTotalHours:       10,
		ScopeTimerRemainingSeconds: remaining,
		ScopeTimerIsRunning:        running,
		ScopeTimerLastUpdated:      anchor,
	}
}

func TestCurrentRemaining(t *testing.T) {
	anchor := date(2026, time.February, 13, 9, 0) // Jumat, dalam jam kerja

	tests := []struct {
		name  string
		scope m.ScopeModel
		now   time.Time
		want  int64
	}{
		{
			name:  "paused returns stored value",
			scope: newScope(5000, false, &anchor),
			now:   date(2026, time.February, 13, 12, 0),
			want:  5000,
		},
		{
			name:  "running subtracts business elapsed",
			scope: newScope(5000, true, &anchor),
			now:   date(2026, time.February, 13, 10, 0),
			want:  5000 - 3600,
		},
		{
			name:  "running over Sunday counts nothing extra",
			scope: newScope(5000, true, timePtr(date(2026, time.February, 15, 9, 0))), // Minggu
			now:   date(2026, time.February, 15, 15, 0),
			want:  5000,
		},
		{
			name:  "never negative",
			scope: newScope(60, true, &anchor),
			now:   date(2026, time.February, 13, 16, 20),
			want:  0,
		},
		{
			name:  "running without anchor falls back to stored",
			scope: newScope(123, true, nil),
			now:   date(2026, time.February, 13, 12, 0),
			want:  123,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CurrentRemaining(tt.scope, tt.now); got != tt.want {
				t.Errorf("CurrentRemaining() = %d, want %d", got, tt.want)
			}
			if got := CurrentRemaining(tt.scope, tt.now); got < 0 {
				t.Errorf("CurrentRemaining() negative: %d", got)
			}
		})
	}
}

func TestPauseThenStartRoundTrip(t *testing.T) {
	anchor := date(2026, time.February, 13, 9, 0)
	s := newScope(5000, true, &anchor)

	now := date(2026, time.February, 13, 10, 0)
	PauseTimer(&s, now)
	if s.ScopeTimerIsRunning {
		t.Fatal("expected paused")
	}
	if s.ScopeTimerRemainingSeconds != 5000-3600 {
		t.Fatalf("remaining after pause = %d", s.ScopeTimerRemainingSeconds)
	}

	StartTimer(&s, now)
	if !s.ScopeTimerIsRunning {
		t.Fatal("expected running")
	}
	// tanpa waktu berlalu, nilai live tidak berubah
	if got := CurrentRemaining(s, now); got != 5000-3600 {
		t.Errorf("CurrentRemaining after restart = %d, want %d", got, 5000-3600)
	}
}

func TestPauseWhenNotRunningIsNoop(t *testing.T) {
	anchor := date(2026, time.February, 13, 9, 0)
	s := newScope(5000, false, &anchor)
	PauseTimer(&s, date(2026, time.February, 13, 12, 0))
	if s.ScopeTimerRemainingSeconds != 5000 {
		t.Errorf("remaining changed on paused pause: %d", s.ScopeTimerRemainingSeconds)
	}
}

func TestResetTimer(t *testing.T) {
	anchor := date(2026, time.February, 13, 9, 0)
	s := newScope(100, true, &anchor)

	ResetTimer(&s, nil)
	if s.ScopeTimerRemainingSeconds != 10*3600 {
		t.Errorf("reset to stored hours: got %d", s.ScopeTimerRemainingSeconds)
	}
	if s.ScopeTimerIsRunning || s.ScopeTimerLastUpdated != nil {
		t.Error("reset must stop timer and clear anchor")
	}

	h := 2.5
	ResetTimer(&s, &h)
	if s.ScopeTimerRemainingSeconds != 9000 {
		t.Errorf("reset with explicit hours: got %d", s.ScopeTimerRemainingSeconds)
	}
	if s.ScopeTimerTotalHours != 2.5 {
		t.Errorf("total hours not updated: %v", s.ScopeTimerTotalHours)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
