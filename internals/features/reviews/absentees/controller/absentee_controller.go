// file: internals/features/reviews/absentees/controller/absentee_controller.go
package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"

	s "reviewku_backend/internals/features/reviews/absentees/service"
	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
	sessionModel "reviewku_backend/internals/features/sessions/lab_sessions/model"
	teamModel "reviewku_backend/internals/features/teams/model"
)

type AbsenteeController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AbsenteeController {
	return &AbsenteeController{DB: db}
}

// GET /absentees?scope_id= — laporan read-only; state dibaca sekali lalu
// disusun murni di memori, tidak ada mutasi.
func (ctl *AbsenteeController) Report(c *fiber.Ctx) error {
	scopeStr := strings.TrimSpace(c.Query("scope_id"))
	if scopeStr == "" {
		return helper.JsonError(c, http.StatusBadRequest, "scope_id wajib diisi")
	}
	scopeID, err := uuid.Parse(scopeStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "scope_id tidak valid")
	}

	now := time.Now()
	db := ctl.DB.WithContext(c.Context())

	var teams []teamModel.TeamModel
	if err := db.
		Where("team_scope_id = ? AND team_deleted_at IS NULL", scopeID).
		Find(&teams).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	teamIDs := make([]uuid.UUID, 0, len(teams))
	projectIDs := make([]uuid.UUID, 0, len(teams))
	for i := range teams {
		teamIDs = append(teamIDs, teams[i].TeamID)
		if teams[i].TeamProjectID != nil {
			projectIDs = append(projectIDs, *teams[i].TeamProjectID)
		}
	}

	var reviews []reviewModel.ReviewModel
	if len(teamIDs) > 0 {
		if err := db.Where("review_team_id IN ?", teamIDs).Find(&reviews).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	var assignments []reviewModel.ReviewAssignmentModel
	if len(projectIDs) > 0 {
		if err := db.Where("review_assignment_project_id IN ?", projectIDs).
			Find(&assignments).Error; err != nil {
			return helper.JsonError(c, http.StatusInternalServerError, err.Error())
		}
	}

	var sessions []sessionModel.LabSessionModel
	if err := db.
		Where("lab_session_scope_id = ? AND lab_session_deleted_at IS NULL", scopeID).
		Find(&sessions).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	report := s.BuildAbsenteeReport(teams, reviews, assignments, sessions, now)
	return helper.JsonOK(c, "ok", fiber.Map{
		"scope_id":  scopeID,
		"total":     len(report),
		"absentees": report,
	})
}
