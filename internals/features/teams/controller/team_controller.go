// file: internals/features/teams/controller/team_controller.go
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

	d "reviewku_backend/internals/features/teams/dto"
	m "reviewku_backend/internals/features/teams/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type TeamController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeamController {
	return &TeamController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

// Batch berjalan lebih lama dari request biasa; timeout diperpanjang dan
// diproses per-chunk supaya satu item bermasalah tidak memblokir sisanya.
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

func findTeam(tx *gorm.DB, id uuid.UUID) (*m.TeamModel, error) {
	var t m.TeamModel
	if err := tx.Where("team_id = ? AND team_deleted_at IS NULL", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

/* =========================
   CRUD-lite
   ========================= */

func (ctl *TeamController) Create(c *fiber.Ctx) error {
	var req d.CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Team created", model)
}

func (ctl *TeamController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.TeamModel{}).Where("team_deleted_at IS NULL")
	if scope := strings.TrimSpace(c.Query("scope_id")); scope != "" {
		scopeID, err := uuid.Parse(scope)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "scope_id tidak valid")
		}
		q = q.Where("team_scope_id = ?", scopeID)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("team_status = ?", strings.ToUpper(st))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}
	var rows []m.TeamModel
	if err := q.Order("team_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", rows, &p)
}

func (ctl *TeamController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	t, err := findTeam(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Team tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", t)
}

func (ctl *TeamController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	existing, err := findTeam(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Team tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if err := req.Apply(existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Save(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Team updated", existing)
}

func (ctl *TeamController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	existing, err := findTeam(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Team tidak ditemukan")
		}
		return writePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Team deleted", existing)
}

/* =========================
   Status & submit
   ========================= */

// PATCH /:id/status — dijaga tabel transisi; transisi ilegal = 412.
func (ctl *TeamController) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.UpdateTeamStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	next := m.TeamStatus(strings.ToUpper(strings.TrimSpace(req.TeamStatus)))
	if !next.Valid() {
		return helper.JsonError(c, http.StatusBadRequest, "Status tidak dikenal: "+string(next))
	}

	var out *m.TeamModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		t, er := findTeam(tx, id)
		if er != nil {
			return er
		}
		if !t.TeamStatus.CanTransitionTo(next) {
			return fiber.NewError(http.StatusPreconditionFailed,
				fmt.Sprintf("Transisi status %s → %s tidak diizinkan", t.TeamStatus, next))
		}
		t.TeamStatus = next
		if er := tx.Save(t).Error; er != nil {
			return er
		}
		out = t
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
	return helper.JsonUpdated(c, "Status updated", out)
}

// POST /:id/submit — submit fase untuk review. Precondition: team punya
// project dan status mengizinkan READY_FOR_REVIEW.
func (ctl *TeamController) SubmitForReview(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.SubmitForReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var out *m.TeamModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		t, er := findTeam(tx, id)
		if er != nil {
			return er
		}
		if t.TeamProjectID == nil {
			return fiber.NewError(http.StatusPreconditionFailed, "Team belum memiliki project")
		}
		if !t.TeamStatus.CanTransitionTo(m.TeamStatusReadyForReview) {
			return fiber.NewError(http.StatusPreconditionFailed,
				fmt.Sprintf("Status %s tidak bisa submit untuk review", t.TeamStatus))
		}
		if req.Phase > t.TeamSubmissionPhase {
			t.TeamSubmissionPhase = req.Phase
		}
		t.TeamStatus = m.TeamStatusReadyForReview
		if er := tx.Save(t).Error; er != nil {
			return er
		}
		out = t
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
	return helper.JsonUpdated(c, "Submitted for review", out)
}

/* =========================
   Bulk status update
   ========================= */

// POST /bulk/status — diproses per-chunk: satu chunk satu transaksi,
// kegagalan per-item dicatat tanpa menggugurkan item lain di chunk itu.
// Atomicity-nya per-chunk, bukan per-batch (trade-off eksplisit).
func (ctl *TeamController) BulkStatusUpdate(c *fiber.Ctx) error {
	var req d.BulkStatusUpdateRequest
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

	summary := helper.NewBatchSummary()
	for start := 0; start < len(req.Items); start += batchChunkSize {
		end := start + batchChunkSize
		if end > len(req.Items) {
			end = len(req.Items)
		}
		chunk := req.Items[start:end]

		// hasil chunk ditampung dulu; baru digabung kalau transaksinya commit
		chunkSummary := helper.NewBatchSummary()
		if err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, item := range chunk {
				teamID, er := uuid.Parse(strings.TrimSpace(item.TeamID))
				if er != nil {
					chunkSummary.AddFailed(item.TeamID, "team_id tidak valid")
					continue
				}
				next := m.TeamStatus(strings.ToUpper(strings.TrimSpace(item.TeamStatus)))
				if !next.Valid() {
					chunkSummary.AddFailed(item.TeamID, "Status tidak dikenal: "+string(next))
					continue
				}
				t, er := findTeam(tx, teamID)
				if er != nil {
					if errors.Is(er, gorm.ErrRecordNotFound) {
						chunkSummary.AddFailed(item.TeamID, "Team tidak ditemukan")
						continue
					}
					return er
				}
				if !t.TeamStatus.CanTransitionTo(next) {
					chunkSummary.AddSkipped(item.TeamID,
						fmt.Sprintf("Transisi %s → %s tidak diizinkan", t.TeamStatus, next))
					continue
				}
				t.TeamStatus = next
				if er := tx.Save(t).Error; er != nil {
					return er
				}
				chunkSummary.AddSuccess(item.TeamID, "")
			}
			return nil
		}); err != nil {
			log.Printf("[Team.BulkStatusUpdate] chunk error: %v", err)
			for _, item := range chunk {
				summary.AddFailed(item.TeamID, "Chunk dibatalkan: "+err.Error())
			}
			continue
		}
		for _, it := range chunkSummary.Items {
			summary.Add(it.ID, it.Status, it.Reason)
		}
	}

	return helper.JsonOK(c, "Bulk status selesai", summary)
}
