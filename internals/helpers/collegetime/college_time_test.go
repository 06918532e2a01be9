package collegetime

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestCollegeSecondsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int64
	}{
		{
			name:  "start >= end",
			start: date(2026, time.February, 13, 10, 0),
			end:   date(2026, time.February, 13, 9, 0),
			want:  0,
		},
		{
			name:  "fully inside one business day",
			start: date(2026, time.February, 13, 9, 0), // Jumat
			end:   date(2026, time.February, 13, 10, 0),
			want:  3600,
		},
		{
			name:  "entirely before business window",
			start: date(2026, time.February, 13, 6, 0),
			end:   date(2026, time.February, 13, 8, 0),
			want:  0,
		},
		{
			name:  "entirely after business window",
			start: date(2026, time.February, 13, 17, 0),
			end:   date(2026, time.February, 13, 23, 0),
			want:  0,
		},
		{
			name:  "entirely on a Sunday",
			start: date(2026, time.February, 15, 9, 0), // Minggu
			end:   date(2026, time.February, 15, 15, 0),
			want:  0,
		},
		{
			name:  "clipped to window start",
			start: date(2026, time.February, 13, 8, 0),
			end:   date(2026, time.February, 13, 9, 45),
			want:  3600, // hanya 08:45–09:45
		},
		{
			name:  "full business day",
			start: date(2026, time.February, 13, 0, 0),
			end:   date(2026, time.February, 14, 0, 0),
			want:  (7*60 + 35) * 60, // 08:45–16:20
		},
		{
			name:  "Saturday through Monday skips Sunday",
			start: date(2026, time.February, 14, 16, 0), // Sabtu 16:00
			end:   date(2026, time.February, 16, 9, 0),  // Senin 09:00
			want:  20*60 + 15*60, // Sabtu 16:00–16:20 + Senin 08:45–09:00
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollegeSecondsBetween(tt.start, tt.end); got != tt.want {
				t.Errorf("CollegeSecondsBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCollegeSecondsBetweenAdditive(t *testing.T) {
	start := date(2026, time.February, 13, 7, 0)
	mid := date(2026, time.February, 14, 12, 0)
	end := date(2026, time.February, 16, 18, 0)

	whole := CollegeSecondsBetween(start, end)
	split := CollegeSecondsBetween(start, mid) + CollegeSecondsBetween(mid, end)
	if whole != split {
		t.Errorf("partition mismatch: whole=%d split=%d", whole, split)
	}
}

func TestAddSkippingSundays(t *testing.T) {
	day := 24 * time.Hour
	tests := []struct {
		name  string
		start time.Time
		d     time.Duration
		want  time.Time
	}{
		{
			name:  "Friday + 24h lands on Saturday",
			start: date(2026, time.February, 13, 10, 0),
			d:     day,
			want:  date(2026, time.February, 14, 10, 0),
		},
		{
			name:  "Saturday + 24h jumps over Sunday to Monday",
			start: date(2026, time.February, 14, 10, 0),
			d:     day,
			want:  date(2026, time.February, 16, 10, 0),
		},
		{
			name:  "Sunday start pre-shifts, lands on Tuesday",
			start: date(2026, time.February, 15, 10, 0),
			d:     day,
			want:  date(2026, time.February, 17, 10, 0),
		},
		{
			name:  "zero duration on weekday is identity",
			start: date(2026, time.February, 13, 10, 0),
			d:     0,
			want:  date(2026, time.February, 13, 10, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddSkippingSundays(tt.start, tt.d)
			if !got.Equal(tt.want) {
				t.Errorf("AddSkippingSundays() = %v, want %v", got, tt.want)
			}
			if got.Weekday() == time.Sunday {
				t.Errorf("result fell on Sunday: %v", got)
			}
		})
	}
}

func TestAddSkippingSundaysNeverSunday(t *testing.T) {
	// semua kombinasi hari-start × durasi sampai 7 hari
	base := date(2026, time.February, 9, 10, 0) // Senin
	for d := 0; d < 7; d++ {
		for h := 0; h <= 7*24; h += 6 {
			start := base.AddDate(0, 0, d)
			got := AddSkippingSundays(start, time.Duration(h)*time.Hour)
			if got.Weekday() == time.Sunday {
				t.Fatalf("start=%v dur=%dh landed on Sunday (%v)", start, h, got)
			}
		}
	}
}
