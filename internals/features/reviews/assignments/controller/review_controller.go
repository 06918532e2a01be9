// file: internals/features/reviews/assignments/controller/review_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "reviewku_backend/internals/helpers"
	helperAuth "reviewku_backend/internals/helpers/auth"

	d "reviewku_backend/internals/features/reviews/assignments/dto"
	m "reviewku_backend/internals/features/reviews/assignments/model"
	teamDTO "reviewku_backend/internals/features/teams/dto"
)

// POST /reviews/:id/complete — faculty menyelesaikan review PENDING miliknya.
// Status berpindah ke non-PENDING (fase team ikut settle), completed_at diisi,
// student absen eksplisit dicatat di review.
func (ctl *AssignmentController) CompleteReview(c *fiber.Ctx) error {
	reviewID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.CompleteReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	next := m.ReviewStatus(req.Status)
	if !next.Settled() {
		return helper.JsonError(c, http.StatusBadRequest, "Status penyelesaian tidak valid: "+req.Status)
	}

	now := time.Now()
	var out *m.ReviewModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var review m.ReviewModel
		if er := tx.Where("review_id = ?", reviewID).First(&review).Error; er != nil {
			return er
		}

		// Hanya faculty pemilik review (atau admin) yang boleh menutupnya.
		if !helperAuth.IsFacultySelf(c, review.ReviewFacultyID) {
			return fiber.NewError(http.StatusForbidden, "Review ini bukan milik Anda")
		}
		if review.ReviewStatus != m.ReviewStatusPending {
			return fiber.NewError(http.StatusPreconditionFailed,
				"Review sudah ditutup dengan status "+string(review.ReviewStatus))
		}

		absent, er := teamDTO.NormalizeStudentIDs(req.AbsentStudentIDs)
		if er != nil {
			return fiber.NewError(http.StatusBadRequest, er.Error())
		}

		review.ReviewStatus = next
		review.ReviewCompletedAt = &now
		review.ReviewAbsentStudentIDs = absent
		if er := tx.Save(&review).Error; er != nil {
			return er
		}
		out = &review
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Review tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Review completed", d.ReviewFromModel(out))
}

// GET /reviews?team_id=&faculty_id=&phase=&status=
func (ctl *AssignmentController) ListReviews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ReviewModel{})
	if tid := c.Query("team_id"); tid != "" {
		q = q.Where("review_team_id = ?", tid)
	}
	if fid := c.Query("faculty_id"); fid != "" {
		q = q.Where("review_faculty_id = ?", fid)
	}
	if ph := c.Query("phase"); ph != "" {
		q = q.Where("review_phase = ?", ph)
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("review_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}
	var rows []m.ReviewModel
	if err := q.Order("review_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	out := make([]d.ReviewResponse, 0, len(rows))
	for i := range rows {
		out = append(out, d.ReviewFromModel(&rows[i]))
	}
	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", out, &p)
}
