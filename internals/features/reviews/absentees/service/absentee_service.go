// file: internals/features/reviews/absentees/service/absentee_service.go
package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
	teamModel "reviewku_backend/internals/features/teams/model"
)

const (
	AbsenteeTypeExplicit = "explicit"
	AbsenteeTypeImplicit = "implicit"

	// Label fallback saat tidak ada session yang aktif di assigned_at.
	LabelMissedDeadline = "Missed Deadline"
	labelMarkedAbsent   = "Marked Absent"
)

// AbsenteeEntry: satu baris laporan absensi per (student, phase).
type AbsenteeEntry struct {
	StudentID    string     `json:"student_id"`
	TeamID       uuid.UUID  `json:"team_id"`
	Phase        int        `json:"phase"`
	FacultyID    uuid.UUID  `json:"faculty_id"`
	Type         string     `json:"type"` // explicit | implicit
	SessionLabel string     `json:"session_label"`
	SessionID    *uuid.UUID `json:"session_id,omitempty"`
}

// BuildAbsenteeReport menyusun laporan absensi murni dari state yang sudah
// dipersist — tanpa query, tanpa side effect:
//   - explicit: student yang ditandai absen di review oleh faculty;
//   - implicit: student dari team yang jendela assignment fasenya sudah
//     expired tanpa PERNAH ada review untuk fase itu, dilabeli session yang
//     aktif pada assigned_at (fallback "Missed Deadline").
//
// Student yang sudah tercatat explicit untuk satu fase tidak dihitung lagi
// sebagai implicit pada fase yang sama.
func BuildAbsenteeReport(
	teams []teamModel.TeamModel,
	reviews []reviewModel.ReviewModel,
	assignments []reviewModel.ReviewAssignmentModel,
	sessions []sessionModel.LabSessionModel,
	now time.Time,
) []AbsenteeEntry {
	teamByID := make(map[uuid.UUID]*teamModel.TeamModel, len(teams))
	teamByProject := make(map[uuid.UUID]*teamModel.TeamModel, len(teams))
	for i := range teams {
		t := &teams[i]
		teamByID[t.TeamID] = t
		if t.TeamProjectID != nil {
			teamByProject[*t.TeamProjectID] = t
		}
	}

	// Fase yang pernah punya review (status apa pun) per team.
	type teamPhase struct {
		team  uuid.UUID
		phase int
	}
	reviewed := make(map[teamPhase]struct{}, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		reviewed[teamPhase{r.ReviewTeamID, r.ReviewPhase}] = struct{}{}
	}

	type studentPhase struct {
		student string
		phase   int
	}
	seenExplicit := make(map[studentPhase]struct{})

	var out []AbsenteeEntry

	// (a) explicit
	for i := range reviews {
		r := &reviews[i]
		for _, sid := range r.ReviewAbsentStudentIDs {
			key := studentPhase{sid, r.ReviewPhase}
			if _, dup := seenExplicit[key]; dup {
				continue
			}
			seenExplicit[key] = struct{}{}
			out = append(out, AbsenteeEntry{
				StudentID:    sid,
				TeamID:       r.ReviewTeamID,
				Phase:        r.ReviewPhase,
				FacultyID:    r.ReviewFacultyID,
				Type:         AbsenteeTypeExplicit,
				SessionLabel: labelMarkedAbsent,
			})
		}
	}

	// (b) implicit
	for i := range assignments {
		a := &assignments[i]
		if !a.Expired(now) {
			continue
		}
		team, ok := teamByProject[a.ReviewAssignmentProjectID]
		if !ok {
			continue
		}
		if _, ok := reviewed[teamPhase{team.TeamID, a.ReviewAssignmentPhase}]; ok {
			continue
		}

		label := LabelMissedDeadline
		var sessionID *uuid.UUID
		if ses := sessionAt(sessions, a.ReviewAssignmentFacultyID, team.TeamScopeID, a.ReviewAssignmentAssignedAt); ses != nil {
			label = SessionLabel(ses)
			id := ses.LabSessionID
			sessionID = &id
		}

		for _, sid := range team.TeamStudentIDs {
			if _, dup := seenExplicit[studentPhase{sid, a.ReviewAssignmentPhase}]; dup {
				continue
			}
			out = append(out, AbsenteeEntry{
				StudentID:    sid,
				TeamID:       team.TeamID,
				Phase:        a.ReviewAssignmentPhase,
				FacultyID:    a.ReviewAssignmentFacultyID,
				Type:         AbsenteeTypeImplicit,
				SessionLabel: label,
				SessionID:    sessionID,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Phase != out[j].Phase {
			return out[i].Phase < out[j].Phase
		}
		return out[i].StudentID < out[j].StudentID
	})
	return out
}

// sessionAt mencari session milik faculty di scope yang mencakup instant at.
func sessionAt(
	sessions []sessionModel.LabSessionModel,
	facultyID, scopeID uuid.UUID,
	at time.Time,
) *sessionModel.LabSessionModel {
	for i := range sessions {
		s := &sessions[i]
		if s.LabSessionFacultyID != facultyID || s.LabSessionScopeID != scopeID {
			continue
		}
		if !s.LabSessionStartTime.After(at) && !s.LabSessionEndTime.Before(at) {
			return s
		}
	}
	return nil
}

// SessionLabel: label ringkas untuk satu session.
func SessionLabel(s *sessionModel.LabSessionModel) string {
	return fmt.Sprintf("Session %s %s–%s",
		s.LabSessionStartTime.Format("2006-01-02"),
		s.LabSessionStartTime.Format("15:04"),
		s.LabSessionEndTime.Format("15:04"),
	)
}
