// file: internals/features/teams/controller/team_role_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"
	helperAuth "reviewku_backend/internals/helpers/auth"

	d "reviewku_backend/internals/features/teams/dto"
	m "reviewku_backend/internals/features/teams/model"
	svc "reviewku_backend/internals/features/teams/service"
)

/* =========================
   Guide / Subject Expert
   ========================= */

// POST /:id/guide — pilih guide untuk team (kuota dicek di transaksi yang sama).
func (ctl *TeamController) SelectGuide(c *fiber.Ctx) error {
	return ctl.selectFaculty(c, true)
}

// POST /:id/expert — pilih subject expert. Precondition: guide sudah dipilih.
func (ctl *TeamController) SelectExpert(c *fiber.Ctx) error {
	return ctl.selectFaculty(c, false)
}

func (ctl *TeamController) selectFaculty(c *fiber.Ctx, asGuide bool) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.SelectFacultyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	facultyID, err := uuid.Parse(strings.TrimSpace(req.FacultyID))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
	}

	var out *m.TeamModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		t, er := findTeam(tx, id)
		if er != nil {
			return er
		}
		if !asGuide && t.TeamGuideID == nil {
			return fiber.NewError(http.StatusPreconditionFailed, "Pilih guide terlebih dahulu sebelum expert")
		}
		if er := svc.EnsureFacultyAssignable(tx, t, facultyID, asGuide); er != nil {
			switch {
			case errors.Is(er, svc.ErrQuotaExceeded), errors.Is(er, svc.ErrGuideExpertSame):
				return fiber.NewError(http.StatusConflict, er.Error())
			default:
				return er
			}
		}

		if asGuide {
			t.TeamGuideID = &facultyID
			t.TeamGuideStatus = m.RoleStatusPending
		} else {
			t.TeamExpertID = &facultyID
			t.TeamExpertStatus = m.RoleStatusPending
		}
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
	return helper.JsonUpdated(c, "Faculty selected", out)
}

// POST /:id/roles/:role/:action — faculty menerima/menolak role miliknya
// (admin boleh memutuskan atas nama siapa pun). role: guide|expert,
// action: approve|reject. Approve mengecek ulang kuota: kondisi bisa
// berubah antara select dan approve.
func (ctl *TeamController) DecideRole(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	role := strings.ToLower(strings.TrimSpace(c.Params("role")))
	action := strings.ToLower(strings.TrimSpace(c.Params("action")))
	if role != "guide" && role != "expert" {
		return helper.JsonError(c, http.StatusBadRequest, "role harus guide atau expert")
	}
	if action != "approve" && action != "reject" {
		return helper.JsonError(c, http.StatusBadRequest, "action harus approve atau reject")
	}

	var out *m.TeamModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		t, er := findTeam(tx, id)
		if er != nil {
			return er
		}

		var facultyID *uuid.UUID
		if role == "guide" {
			facultyID = t.TeamGuideID
		} else {
			facultyID = t.TeamExpertID
		}
		if facultyID == nil {
			return fiber.NewError(http.StatusPreconditionFailed, "Role "+role+" belum dipilih untuk team ini")
		}
		if !helperAuth.IsFacultySelf(c, *facultyID) {
			return fiber.NewError(http.StatusForbidden, "Hanya faculty yang bersangkutan atau admin")
		}

		next := m.RoleStatusRejected
		if action == "approve" {
			next = m.RoleStatusApproved
			if er := svc.EnsureFacultyAssignable(tx, t, *facultyID, role == "guide"); er != nil {
				switch {
				case errors.Is(er, svc.ErrQuotaExceeded), errors.Is(er, svc.ErrGuideExpertSame):
					return fiber.NewError(http.StatusConflict, er.Error())
				default:
					return er
				}
			}
		}

		if role == "guide" {
			t.TeamGuideStatus = next
		} else {
			t.TeamExpertStatus = next
		}
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
	return helper.JsonUpdated(c, "Role decision saved", out)
}
