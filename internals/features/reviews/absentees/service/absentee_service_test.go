package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
	teamModel "reviewku_backend/internals/features/teams/model"
)

func TestBuildAbsenteeReport(t *testing.T) {
	now := time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC)
	past := now.Add(-3 * time.Hour)
	future := now.Add(3 * time.Hour)

	scopeID := uuid.New()
	facultyID := uuid.New()
	projectID := uuid.New()
	studentA := uuid.New().String()
	studentB := uuid.New().String()

	team := teamModel.TeamModel{
		TeamID:         uuid.New(),
		TeamScopeID:    scopeID,
		TeamProjectID:  &projectID,
		TeamStudentIDs: pq.StringArray{studentA, studentB},
	}

	expiredAssignment := func(phase int, assignedAt time.Time) reviewModel.ReviewAssignmentModel {
		exp := past
		return reviewModel.ReviewAssignmentModel{
			ReviewAssignmentProjectID:       projectID,
			ReviewAssignmentFacultyID:       facultyID,
			ReviewAssignmentPhase:           phase,
			ReviewAssignmentAccessExpiresAt: &exp,
			ReviewAssignmentAssignedAt:      assignedAt,
		}
	}

	t.Run("jendela expired tanpa review = implicit untuk semua student", func(t *testing.T) {
		got := BuildAbsenteeReport(
			[]teamModel.TeamModel{team},
			nil,
			[]reviewModel.ReviewAssignmentModel{expiredAssignment(1, past)},
			nil,
			now,
		)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, e := range got {
			if e.Type != AbsenteeTypeImplicit {
				t.Errorf("type = %s, want implicit", e.Type)
			}
			if e.SessionLabel != LabelMissedDeadline {
				t.Errorf("label = %q, want %q", e.SessionLabel, LabelMissedDeadline)
			}
		}
	})

	t.Run("jendela masih hidup tidak menghasilkan implicit", func(t *testing.T) {
		live := expiredAssignment(1, past)
		live.ReviewAssignmentAccessExpiresAt = &future
		got := BuildAbsenteeReport([]teamModel.TeamModel{team}, nil,
			[]reviewModel.ReviewAssignmentModel{live}, nil, now)
		if len(got) != 0 {
			t.Fatalf("len = %d, want 0", len(got))
		}
	})

	t.Run("review apa pun di fase itu membatalkan implicit", func(t *testing.T) {
		review := reviewModel.ReviewModel{
			ReviewTeamID:    team.TeamID,
			ReviewFacultyID: facultyID,
			ReviewPhase:     1,
			ReviewStatus:    reviewModel.ReviewStatusPending,
		}
		got := BuildAbsenteeReport([]teamModel.TeamModel{team},
			[]reviewModel.ReviewModel{review},
			[]reviewModel.ReviewAssignmentModel{expiredAssignment(1, past)},
			nil, now)
		if len(got) != 0 {
			t.Fatalf("len = %d, want 0", len(got))
		}
	})

	t.Run("explicit menang atas implicit per student per fase", func(t *testing.T) {
		// studentA ditandai absen eksplisit di fase 2; assignment fase 1
		// expired tanpa review → fase 1 tetap implicit untuk keduanya,
		// fase 2 explicit hanya untuk studentA.
		review := reviewModel.ReviewModel{
			ReviewTeamID:           team.TeamID,
			ReviewFacultyID:        facultyID,
			ReviewPhase:            2,
			ReviewStatus:           reviewModel.ReviewStatusCompleted,
			ReviewAbsentStudentIDs: pq.StringArray{studentA},
		}
		got := BuildAbsenteeReport([]teamModel.TeamModel{team},
			[]reviewModel.ReviewModel{review},
			[]reviewModel.ReviewAssignmentModel{expiredAssignment(1, past)},
			nil, now)

		if len(got) != 3 {
			t.Fatalf("len = %d, want 3: %+v", len(got), got)
		}
		explicitCount := 0
		for _, e := range got {
			if e.Type == AbsenteeTypeExplicit {
				explicitCount++
				if e.StudentID != studentA || e.Phase != 2 {
					t.Errorf("explicit salah: %+v", e)
				}
			}
		}
		if explicitCount != 1 {
			t.Errorf("explicit count = %d, want 1", explicitCount)
		}
	})

	t.Run("explicit di fase yang sama menekan implicit student itu", func(t *testing.T) {
		review := reviewModel.ReviewModel{
			ReviewTeamID:           team.TeamID,
			ReviewFacultyID:        facultyID,
			ReviewPhase:            1,
			ReviewStatus:           reviewModel.ReviewStatusCompleted,
			ReviewAbsentStudentIDs: pq.StringArray{studentA},
		}
		otherProject := uuid.New()
		otherTeam := team
		otherTeam.TeamID = uuid.New()
		otherTeam.TeamProjectID = &otherProject
		exp := past
		a := reviewModel.ReviewAssignmentModel{
			ReviewAssignmentProjectID:       otherProject,
			ReviewAssignmentFacultyID:       facultyID,
			ReviewAssignmentPhase:           1,
			ReviewAssignmentAccessExpiresAt: &exp,
			ReviewAssignmentAssignedAt:      past,
		}
		got := BuildAbsenteeReport(
			[]teamModel.TeamModel{team, otherTeam},
			[]reviewModel.ReviewModel{review},
			[]reviewModel.ReviewAssignmentModel{a},
			nil, now)

		// studentA: explicit fase 1 (lewat review team pertama); implicit
		// dari otherTeam fase 1 harus tersaring. studentB tetap implicit.
		var implicitStudents []string
		for _, e := range got {
			if e.Type == AbsenteeTypeImplicit {
				implicitStudents = append(implicitStudents, e.StudentID)
			}
		}
		if len(implicitStudents) != 1 || implicitStudents[0] != studentB {
			t.Errorf("implicit students = %v, want hanya %s", implicitStudents, studentB)
		}
	})

	t.Run("label dari session yang aktif di assigned_at", func(t *testing.T) {
		assignedAt := time.Date(2026, time.March, 9, 9, 30, 0, 0, time.UTC)
		ses := sessionModel.LabSessionModel{
			LabSessionID:        uuid.New(),
			LabSessionScopeID:   scopeID,
			LabSessionFacultyID: facultyID,
			LabSessionStartTime: time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC),
			LabSessionEndTime:   time.Date(2026, time.March, 9, 11, 0, 0, 0, time.UTC),
		}
		got := BuildAbsenteeReport([]teamModel.TeamModel{team}, nil,
			[]reviewModel.ReviewAssignmentModel{expiredAssignment(1, assignedAt)},
			[]sessionModel.LabSessionModel{ses}, now)

		if len(got) == 0 {
			t.Fatal("laporan kosong")
		}
		want := SessionLabel(&ses)
		for _, e := range got {
			if e.SessionLabel != want {
				t.Errorf("label = %q, want %q", e.SessionLabel, want)
			}
			if e.SessionID == nil || *e.SessionID != ses.LabSessionID {
				t.Errorf("session id tidak ikut: %+v", e)
			}
		}
	})
}
