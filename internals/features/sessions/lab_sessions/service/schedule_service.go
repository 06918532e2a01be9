// file: internals/features/sessions/lab_sessions/service/schedule_service.go
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
)

// Overlaps menguji tabrakan dua interval half-open [aStart,aEnd) vs [bStart,bEnd).
// Sesi yang mulai tepat saat sesi lain berakhir TIDAK dianggap tabrakan.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// HasFacultyConflict mengecek apakah faculty sudah punya sesi lain yang
// overlap dengan rentang [start, end). excludeSessionID nil saat booking baru.
func HasFacultyConflict(
	tx *gorm.DB,
	facultyID uuid.UUID,
	start, end time.Time,
	excludeSessionID *uuid.UUID,
) (bool, error) {
	q := tx.Model(&sessionModel.LabSessionModel{}).
		Where("lab_session_faculty_id = ?", facultyID).
		Where("lab_session_start_time < ? AND lab_session_end_time > ?", end, start)
	if excludeSessionID != nil {
		q = q.Where("lab_session_id <> ?", *excludeSessionID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// RosterCovers true bila seluruh want termuat di have. Dipakai auto-assign:
// session "aktif" untuk sebuah team hanya bila rosternya memuat SEMUA student
// team itu, bukan sekadar beririsan.
func RosterCovers(have, want pq.StringArray) bool {
	if len(want) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(have))
	for _, s := range have {
		set[s] = struct{}{}
	}
	for _, s := range want {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}

// MapToDay memindahkan jam:menit:detik dari src ke tanggal target
// (dipakai copy-day: jadwal hari A direplikasi ke hari B pada jam yang sama).
func MapToDay(src, targetDay time.Time) time.Time {
	return time.Date(
		targetDay.Year(), targetDay.Month(), targetDay.Day(),
		src.Hour(), src.Minute(), src.Second(), src.Nanosecond(),
		src.Location(),
	)
}

// SameDay true bila a dan b jatuh di tanggal kalender yang sama (lokasi a).
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayBounds mengembalikan [00:00, 24:00) dari tanggal day.
func DayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
