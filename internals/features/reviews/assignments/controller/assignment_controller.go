// file: internals/features/reviews/assignments/controller/assignment_controller.go
package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"
	helperAuth "reviewku_backend/internals/helpers/auth"

	d "reviewku_backend/internals/features/reviews/assignments/dto"
	m "reviewku_backend/internals/features/reviews/assignments/model"
	s "reviewku_backend/internals/features/reviews/assignments/service"
	teamModel "reviewku_backend/internals/features/teams/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type AssignmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AssignmentController {
	return &AssignmentController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

const (
	batchTimeout   = 45 * time.Second
	batchChunkSize = 50
)

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func writePGError(c *fiber.Ctx, err error) error {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return helper.JsonError(c, http.StatusBadRequest, "Referensi tidak ditemukan (FK violation).")
		case "23505":
			return helper.JsonError(c, http.StatusConflict, "Data duplikat (unique violation).")
		}
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

func findTeam(tx *gorm.DB, id uuid.UUID) (*teamModel.TeamModel, error) {
	var t teamModel.TeamModel
	if err := tx.Where("team_id = ? AND team_deleted_at IS NULL", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// loadReviewContext memuat review + assignment milik team (via project-nya)
// untuk ComputeNextPhase. Team tanpa project = konteks kosong.
func loadReviewContext(tx *gorm.DB, team *teamModel.TeamModel) ([]m.ReviewModel, []m.ReviewAssignmentModel, error) {
	var reviews []m.ReviewModel
	if err := tx.Where("review_team_id = ?", team.TeamID).Find(&reviews).Error; err != nil {
		return nil, nil, err
	}

	var assignments []m.ReviewAssignmentModel
	if team.TeamProjectID != nil {
		if err := tx.Where("review_assignment_project_id = ?", *team.TeamProjectID).
			Find(&assignments).Error; err != nil {
			return nil, nil, err
		}
	}
	return reviews, assignments, nil
}

func actorID(c *fiber.Ctx) *uuid.UUID {
	id, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return nil
	}
	return &id
}

/* =========================
   Assign & transfer (admin)
   ========================= */

// POST /assignments — assign manual faculty ke (project, phase); idempotent
// lewat upsert pada triple unik.
func (ctl *AssignmentController) Assign(c *fiber.Ctx) error {
	var req d.AssignFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	now := time.Now()
	var out *m.ReviewAssignmentModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		a, er := s.AssignFaculty(
			tx, req.ProjectID, req.FacultyID, req.Phase,
			req.AccessStartsAt, req.AccessExpiresAt,
			req.ModeOrDefault(), actorID(c), now,
		)
		if er != nil {
			return er
		}
		out = a
		return nil
	}); err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Faculty assigned", d.AssignmentFromModel(out, now))
}

// POST /teams/:id/review/transfer — pindahkan review PENDING team ke faculty
// baru; jendela lama dicabut, jendela OFFLINE baru dibuka. Satu transaksi.
func (ctl *AssignmentController) Transfer(c *fiber.Ctx) error {
	teamID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.TransferReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	now := time.Now()
	var out *m.ReviewModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		team, er := findTeam(tx, teamID)
		if er != nil {
			return er
		}
		phase := 0
		if req.Phase != nil {
			phase = *req.Phase
		} else {
			reviews, assignments, er2 := loadReviewContext(tx, team)
			if er2 != nil {
				return er2
			}
			phase = s.ComputeNextPhase(team, reviews, assignments, now)
		}

		review, er := s.TransferPendingReview(tx, team, req.NewFacultyID, phase, actorID(c), now)
		if er != nil {
			if errors.Is(er, s.ErrTeamHasNoProject) {
				return fiber.NewError(http.StatusPreconditionFailed, er.Error())
			}
			return er
		}
		out = review
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Team tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Review transferred", d.ReviewFromModel(out))
}

/* =========================
   Auto-assign (admin, batch)
   ========================= */

// POST /assignments/auto-assign — batch auto-assign dari lab session,
// per-chunk satu transaksi; team tanpa session dilaporkan skipped, bukan
// menggagalkan batch.
func (ctl *AssignmentController) AutoAssign(c *fiber.Ctx) error {
	var req d.AutoAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	ctx, cancel := context.WithTimeout(c.Context(), batchTimeout)
	defer cancel()

	// now dibaca sekali untuk seluruh batch supaya semua sub-langkah satu
	// request melihat instant yang sama.
	now := time.Now()

	summary := helper.NewBatchSummary()
	for start := 0; start < len(req.TeamIDs); start += batchChunkSize {
		end := start + batchChunkSize
		if end > len(req.TeamIDs) {
			end = len(req.TeamIDs)
		}
		chunk := req.TeamIDs[start:end]

		chunkSummary := helper.NewBatchSummary()
		if err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, teamID := range chunk {
				key := teamID.String()

				team, er := findTeam(tx, teamID)
				if er != nil {
					if errors.Is(er, gorm.ErrRecordNotFound) {
						chunkSummary.AddFailed(key, "Team tidak ditemukan")
						continue
					}
					return er
				}
				if team.TeamProjectID == nil {
					chunkSummary.AddSkipped(key, "Team belum memiliki project")
					continue
				}

				res, er := s.FindSessionFaculty(tx, team, now)
				if er != nil {
					if errors.Is(er, s.ErrNoSessionFound) {
						chunkSummary.AddSkipped(key, "Tidak ada lab session hari ini")
						continue
					}
					return er
				}

				reviews, assignments, er := loadReviewContext(tx, team)
				if er != nil {
					return er
				}
				phase := s.ComputeNextPhase(team, reviews, assignments, now)

				// savepoint per item: error SQL satu team hanya me-rollback
				// team itu, transaksi chunk tetap hidup untuk sisanya
				if er := tx.Transaction(func(itemTx *gorm.DB) error {
					_, er2 := s.TransferPendingReview(itemTx, team, res.FacultyID, phase, actorID(c), now)
					return er2
				}); er != nil {
					chunkSummary.AddFailed(key, er.Error())
					continue
				}
				chunkSummary.AddSuccess(key, res.Reason)
			}
			return nil
		}); err != nil {
			log.Printf("[Assignment.AutoAssign] chunk error: %v", err)
			for _, teamID := range chunk {
				summary.AddFailed(teamID.String(), "Chunk dibatalkan: "+err.Error())
			}
			continue
		}
		for _, it := range chunkSummary.Items {
			summary.Add(it.ID, it.Status, it.Reason)
		}
	}

	return helper.JsonOK(c, "Auto-assign selesai", summary)
}

/* =========================
   Reads
   ========================= */

// GET /assignments?project_id=&faculty_id=&phase=
func (ctl *AssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	now := time.Now()

	q := ctl.DB.WithContext(c.Context()).Model(&m.ReviewAssignmentModel{})
	if pid := strings.TrimSpace(c.Query("project_id")); pid != "" {
		projectID, err := uuid.Parse(pid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "project_id tidak valid")
		}
		q = q.Where("review_assignment_project_id = ?", projectID)
	}
	if fid := strings.TrimSpace(c.Query("faculty_id")); fid != "" {
		facultyID, err := uuid.Parse(fid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
		}
		q = q.Where("review_assignment_faculty_id = ?", facultyID)
	}
	if ph := strings.TrimSpace(c.Query("phase")); ph != "" {
		q = q.Where("review_assignment_phase = ?", ph)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}
	var rows []m.ReviewAssignmentModel
	if err := q.Order("review_assignment_assigned_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.AssignmentsFromModels(rows, now), &p)
}
