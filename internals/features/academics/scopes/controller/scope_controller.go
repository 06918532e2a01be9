// file: internals/features/academics/scopes/controller/scope_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"

	d "reviewku_backend/internals/features/academics/scopes/dto"
	m "reviewku_backend/internals/features/academics/scopes/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type ScopeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ScopeController {
	return &ScopeController{DB: db, Validate: v}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// --- PG error mapping ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

func mapPGError(err error) (int, string) {
	// 23503 = foreign_key_violation, 23505 = unique_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.JsonError(c, code, msg)
}

func findScope(db *gorm.DB, id uuid.UUID) (*m.ScopeModel, error) {
	var s m.ScopeModel
	err := db.Where("scope_id = ? AND scope_deleted_at IS NULL", id).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

/* =========================
   Create / List / Patch / Delete
   ========================= */

func (ctl *ScopeController) Create(c *fiber.Ctx) error {
	var req d.CreateScopeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(model).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Scope created", d.FromModel(*model))
}

func (ctl *ScopeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctl.DB.WithContext(c.Context()).Model(&m.ScopeModel{}).Where("scope_deleted_at IS NULL")
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}

	var rows []m.ScopeModel
	if err := q.Order("scope_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.FromModels(rows), &p)
}

func (ctl *ScopeController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	s, err := findScope(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromModel(*s))
}

func (ctl *ScopeController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	existing, err := findScope(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}

	var req d.UpdateScopeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	req.Apply(existing)

	if err := ctl.DB.WithContext(c.Context()).Save(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Scope updated", d.FromModel(*existing))
}

func (ctl *ScopeController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	existing, err := findScope(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Scope tidak ditemukan")
		}
		return writePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(existing).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Scope deleted", d.FromModel(*existing))
}
