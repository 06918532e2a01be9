// file: internals/helpers/collegetime/college_time.go
package collegetime

import "time"

// Jam kerja kampus: 08.45–16.20, setiap hari kecuali Minggu.
const (
	WindowStartHour   = 8
	WindowStartMinute = 45
	WindowEndHour     = 16
	WindowEndMinute   = 20
)

func windowFor(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), WindowStartHour, WindowStartMinute, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), WindowEndHour, WindowEndMinute, 0, 0, day.Location())
	return start, end
}

// CollegeSecondsBetween menghitung detik overlap antara [start, end] dan
// union jendela kerja kampus. Dipakai timer scope: waktu hanya "berjalan"
// selama jam kerja, Minggu tidak dihitung.
func CollegeSecondsBetween(start, end time.Time) int64 {
	if !start.Before(end) {
		return 0
	}

	var total time.Duration
	cur := start
	for cur.Before(end) {
		if cur.Weekday() != time.Sunday {
			dayStart, dayEnd := windowFor(cur)
			lo := start
			if dayStart.After(lo) {
				lo = dayStart
			}
			hi := end
			if dayEnd.Before(hi) {
				hi = dayEnd
			}
			if hi.After(lo) {
				total += hi.Sub(lo)
			}
		}
		// lompat ke awal jendela kerja hari berikutnya
		next := cur.AddDate(0, 0, 1)
		cur = time.Date(next.Year(), next.Month(), next.Day(), WindowStartHour, WindowStartMinute, 0, 0, next.Location())
	}

	secs := int64(total / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// AddSkippingSundays menggeser start sejauh d (wall-clock), dengan jaminan
// hasilnya tidak jatuh di hari Minggu dan Minggu tidak "termakan" diam-diam:
//  1. start di hari Minggu → digeser dulu 24 jam ke depan
//  2. hasil penjumlahan jatuh di Minggu → ditambah 24 jam lagi
//
// Maksimal satu pre-shift dan satu post-shift; durasi yang melewati lebih
// dari satu Minggu tidak dikoreksi penuh (kontrak yang disengaja).
func AddSkippingSundays(start time.Time, d time.Duration) time.Time {
	if start.Weekday() == time.Sunday {
		start = start.Add(24 * time.Hour)
	}
	result := start.Add(d)
	if result.Weekday() == time.Sunday {
		result = result.Add(24 * time.Hour)
	}
	return result
}
