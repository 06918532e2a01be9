package service

import (
	"testing"
	"time"

	"github.com/lib/pq"
)

func at(hh, mm int) time.Time {
	return time.Date(2026, time.March, 9, hh, mm, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identik", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"sebagian", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"b di dalam a", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"back to back tidak tabrakan", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"terpisah", at(9, 0), at(10, 0), at(13, 0), at(14, 0), false},
		{"b sebelum a, nempel", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRosterCovers(t *testing.T) {
	tests := []struct {
		name       string
		have, want pq.StringArray
		covered    bool
	}{
		{"roster identik", pq.StringArray{"a", "b"}, pq.StringArray{"a", "b"}, true},
		{"roster session lebih besar", pq.StringArray{"a", "b", "x"}, pq.StringArray{"a", "b"}, true},
		// irisan sebagian bukan cakupan: session {a, x} bukan session
		// "aktif" untuk team {a, b}
		{"irisan sebagian", pq.StringArray{"a", "x"}, pq.StringArray{"a", "b"}, false},
		{"tanpa irisan", pq.StringArray{"x", "y"}, pq.StringArray{"a", "b"}, false},
		{"roster session kosong", pq.StringArray{}, pq.StringArray{"a"}, false},
		{"target kosong tidak pernah tercakup", pq.StringArray{"a", "b"}, pq.StringArray{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RosterCovers(tt.have, tt.want); got != tt.covered {
				t.Errorf("RosterCovers(%v, %v) = %v, want %v", tt.have, tt.want, got, tt.covered)
			}
		})
	}
}

func TestMapToDay(t *testing.T) {
	src := time.Date(2026, time.March, 9, 13, 45, 30, 0, time.UTC)
	target := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	got := MapToDay(src, target)
	want := time.Date(2026, time.March, 12, 13, 45, 30, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MapToDay() = %v, want %v", got, want)
	}
}

func TestDayBounds(t *testing.T) {
	day := time.Date(2026, time.March, 9, 15, 22, 7, 0, time.UTC)
	start, end := DayBounds(day)
	if start.Hour() != 0 || start.Minute() != 0 || start.Day() != 9 {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Errorf("end = %v", end)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, time.March, 9, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, time.March, 9, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, time.March, 10, 0, 1, 0, 0, time.UTC)
	if !SameDay(a, b) {
		t.Errorf("SameDay(a, b) = false, want true")
	}
	if SameDay(a, c) {
		t.Errorf("SameDay(a, c) = true, want false")
	}
}
