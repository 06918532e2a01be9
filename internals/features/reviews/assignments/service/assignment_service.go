// file: internals/features/reviews/assignments/service/assignment_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"reviewku_backend/internals/helpers/collegetime"

	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
	sessionService "reviewku_backend/internals/features/sessions/lab_sessions/service"
	teamModel "reviewku_backend/internals/features/teams/model"
)

// OfflineAccessHours: durasi jendela akses OFFLINE hasil transfer/assign
// manual, dihitung wall-clock lewat AddSkippingSundays.
const OfflineAccessHours = 48

var (
	ErrTeamHasNoProject = errors.New("team belum memiliki project")
	ErrNoSessionFound   = errors.New("tidak ada lab session untuk student team ini hari ini")
)

// ComputeNextPhase menentukan fase review berikutnya untuk team:
// max(submission_phase, 1 + fase settled tertinggi). Fase dianggap settled
// bila ada review non-PENDING ATAU jendela assignment fase itu sudah
// expired — deadline yang terlewat tetap memajukan fase, team tidak pernah
// macet menunggu jendela mati.
func ComputeNextPhase(
	team *teamModel.TeamModel,
	reviews []reviewModel.ReviewModel,
	assignments []reviewModel.ReviewAssignmentModel,
	now time.Time,
) int {
	settledMax := 0
	for _, r := range reviews {
		if r.ReviewStatus.Settled() && r.ReviewPhase > settledMax {
			settledMax = r.ReviewPhase
		}
	}
	for _, a := range assignments {
		if a.Expired(now) && a.ReviewAssignmentPhase > settledMax {
			settledMax = a.ReviewAssignmentPhase
		}
	}

	next := settledMax + 1
	if team.TeamSubmissionPhase > next {
		next = team.TeamSubmissionPhase
	}
	return next
}

// AssignFaculty meng-upsert ReviewAssignment pada triple unik
// (project, faculty, phase); pada bentrok, jendela/mode/audit ditimpa
// seluruhnya (last write wins).
func AssignFaculty(
	tx *gorm.DB,
	projectID, facultyID uuid.UUID,
	phase int,
	startsAt, expiresAt *time.Time,
	mode reviewModel.AssignmentMode,
	assignedBy *uuid.UUID,
	now time.Time,
) (*reviewModel.ReviewAssignmentModel, error) {
	m := reviewModel.ReviewAssignmentModel{
		ReviewAssignmentProjectID:       projectID,
		ReviewAssignmentFacultyID:       facultyID,
		ReviewAssignmentPhase:           phase,
		ReviewAssignmentAccessStartsAt:  startsAt,
		ReviewAssignmentAccessExpiresAt: expiresAt,
		ReviewAssignmentMode:            mode,
		ReviewAssignmentAssignedAt:      now,
		ReviewAssignmentAssignedBy:      assignedBy,
	}

	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "review_assignment_project_id"},
			{Name: "review_assignment_faculty_id"},
			{Name: "review_assignment_phase"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"review_assignment_access_starts_at":  startsAt,
			"review_assignment_access_expires_at": expiresAt,
			"review_assignment_mode":              string(mode),
			"review_assignment_assigned_at":       now,
			"review_assignment_assigned_by":       assignedBy,
			"review_assignment_updated_at":        now,
		}),
	}).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// TransferPendingReview memindahkan review PENDING (team, phase) ke faculty
// baru. Jendela faculty lama pada fase itu dimatikan seketika
// (access_expires_at := now), lalu jendela OFFLINE 48 jam (skip Minggu)
// di-upsert untuk faculty baru. Bila review belum ada, dibuat PENDING.
// Seluruh langkah harus berjalan dalam satu transaksi milik pemanggil.
func TransferPendingReview(
	tx *gorm.DB,
	team *teamModel.TeamModel,
	newFacultyID uuid.UUID,
	phase int,
	assignedBy *uuid.UUID,
	now time.Time,
) (*reviewModel.ReviewModel, error) {
	if team.TeamProjectID == nil {
		return nil, ErrTeamHasNoProject
	}

	var review reviewModel.ReviewModel
	err := tx.
		Where("review_team_id = ? AND review_phase = ? AND review_status = ?",
			team.TeamID, phase, reviewModel.ReviewStatusPending).
		First(&review).Error

	switch {
	case err == nil:
		// Review PENDING ada: cabut akses faculty lama dulu.
		oldFacultyID := review.ReviewFacultyID
		if oldFacultyID != newFacultyID {
			if er := tx.Model(&reviewModel.ReviewAssignmentModel{}).
				Where("review_assignment_project_id = ? AND review_assignment_faculty_id = ? AND review_assignment_phase = ?",
					*team.TeamProjectID, oldFacultyID, phase).
				Updates(map[string]interface{}{
					"review_assignment_access_expires_at": now,
					"review_assignment_updated_at":        now,
				}).Error; er != nil {
				return nil, er
			}
		}
		review.ReviewFacultyID = newFacultyID
		if er := tx.Save(&review).Error; er != nil {
			return nil, er
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		review = reviewModel.ReviewModel{
			ReviewTeamID:    team.TeamID,
			ReviewFacultyID: newFacultyID,
			ReviewPhase:     phase,
			ReviewStatus:    reviewModel.ReviewStatusPending,
		}
		if er := tx.Create(&review).Error; er != nil {
			return nil, er
		}

	default:
		return nil, err
	}

	// Jendela baru: transfer administratif selalu OFFLINE.
	expiresAt := collegetime.AddSkippingSundays(now, OfflineAccessHours*time.Hour)
	startsAt := now
	if _, er := AssignFaculty(
		tx, *team.TeamProjectID, newFacultyID, phase,
		&startsAt, &expiresAt,
		reviewModel.AssignmentModeOffline, assignedBy, now,
	); er != nil {
		return nil, er
	}

	return &review, nil
}

// SessionFacultyResult: hasil pencarian faculty dari lab session.
type SessionFacultyResult struct {
	FacultyID uuid.UUID
	SessionID uuid.UUID
	Reason    string // "active session" | "upcoming session"
}

// FindSessionFaculty mencari sumber auto-assign untuk team: lab session yang
// sedang berlangsung dan rosternya MEMUAT SELURUH student team; bila tidak
// ada, fallback ke session paling awal hari ini yang belum mulai dan memuat
// salah satu student team. ErrNoSessionFound bila dua-duanya kosong
// (dilaporkan per-team oleh pemanggil batch, bukan abort).
func FindSessionFaculty(
	tx *gorm.DB,
	team *teamModel.TeamModel,
	now time.Time,
) (*SessionFacultyResult, error) {
	if len(team.TeamStudentIDs) == 0 {
		return nil, ErrNoSessionFound
	}

	// Kandidat: session aktif sekarang yang beririsan dengan roster team;
	// lolos hanya yang mencakup seluruh roster (exact-match, bukan overlap).
	var activeRows []sessionModel.LabSessionModel
	if err := tx.
		Where("lab_session_scope_id = ?", team.TeamScopeID).
		Where("lab_session_start_time <= ? AND lab_session_end_time >= ?", now, now).
		Where("lab_session_student_ids && ?", team.TeamStudentIDs).
		Order("lab_session_start_time ASC").
		Find(&activeRows).Error; err != nil {
		return nil, err
	}
	for i := range activeRows {
		if !sessionService.RosterCovers(activeRows[i].LabSessionStudentIDs, team.TeamStudentIDs) {
			continue
		}
		return &SessionFacultyResult{
			FacultyID: activeRows[i].LabSessionFacultyID,
			SessionID: activeRows[i].LabSessionID,
			Reason:    "active session",
		}, nil
	}

	// Fallback: session paling awal hari ini yang belum mulai.
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var upcoming sessionModel.LabSessionModel
	err := tx.
		Where("lab_session_scope_id = ?", team.TeamScopeID).
		Where("lab_session_start_time > ? AND lab_session_start_time < ?", now, dayEnd).
		Where("lab_session_student_ids && ?", team.TeamStudentIDs).
		Order("lab_session_start_time ASC").
		First(&upcoming).Error
	if err == nil {
		return &SessionFacultyResult{
			FacultyID: upcoming.LabSessionFacultyID,
			SessionID: upcoming.LabSessionID,
			Reason:    "upcoming session",
		}, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSessionFound
	}
	return nil, err
}
