// file: internals/features/sessions/lab_sessions/controller/lab_session_controller.go
package controller

import (
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

	assignModel "reviewku_backend/internals/features/reviews/assignments/model"
	assignService "reviewku_backend/internals/features/reviews/assignments/service"
	d "reviewku_backend/internals/features/sessions/lab_sessions/dto"
	m "reviewku_backend/internals/features/sessions/lab_sessions/model"
	s "reviewku_backend/internals/features/sessions/lab_sessions/service"
	teamDTO "reviewku_backend/internals/features/teams/dto"
	teamModel "reviewku_backend/internals/features/teams/model"
)

/* =========================
   Controller & Constructor
   ========================= */

type LabSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *LabSessionController {
	return &LabSessionController{DB: db, Validate: v}
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

func findSession(tx *gorm.DB, id uuid.UUID) (*m.LabSessionModel, error) {
	var ses m.LabSessionModel
	if err := tx.Where("lab_session_id = ? AND lab_session_deleted_at IS NULL", id).First(&ses).Error; err != nil {
		return nil, err
	}
	return &ses, nil
}

// parseYMDLocal: "YYYY-MM-DD" → midnight wall-clock lokal.
func parseYMDLocal(v string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", strings.TrimSpace(v), time.Local)
}

func actorID(c *fiber.Ctx) *uuid.UUID {
	id, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return nil
	}
	return &id
}

/* =========================
   Book & update
   ========================= */

// POST /sessions — booking slot baru. Overlap faculty = 409; venue yang sama
// boleh dipakai faculty lain di jam yang sama.
func (ctl *LabSessionController) Book(c *fiber.Ctx) error {
	var req d.BookSessionRequest
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

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		conflict, er := s.HasFacultyConflict(tx, req.FacultyID, req.StartTime, req.EndTime, nil)
		if er != nil {
			return er
		}
		if conflict {
			return fiber.NewError(http.StatusConflict, "Faculty sudah punya session lain di rentang waktu ini")
		}
		return tx.Create(model).Error
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return writePGError(c, err)
	}
	return helper.JsonCreated(c, "Session booked", d.SessionFromModel(model))
}

// PATCH /sessions/:id — ganti faculty dan/atau roster. Perubahan memicu
// sinkronisasi review team yang terdampak ke alokasi faculty terbaru.
func (ctl *LabSessionController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.FacultyID == nil && req.StudentIDs == nil {
		return helper.JsonError(c, http.StatusBadRequest, "Tidak ada perubahan yang diminta")
	}

	now := time.Now()
	var out *m.LabSessionModel
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		ses, er := findSession(tx, id)
		if er != nil {
			return er
		}

		changed := false
		if req.FacultyID != nil && *req.FacultyID != ses.LabSessionFacultyID {
			conflict, er2 := s.HasFacultyConflict(tx, *req.FacultyID,
				ses.LabSessionStartTime, ses.LabSessionEndTime, &ses.LabSessionID)
			if er2 != nil {
				return er2
			}
			if conflict {
				return fiber.NewError(http.StatusConflict, "Faculty baru punya session lain di rentang waktu ini")
			}
			ses.LabSessionFacultyID = *req.FacultyID
			changed = true
		}
		if req.StudentIDs != nil {
			roster, er2 := teamDTO.NormalizeStudentIDs(*req.StudentIDs)
			if er2 != nil {
				return fiber.NewError(http.StatusBadRequest, er2.Error())
			}
			ses.LabSessionStudentIDs = roster
			changed = true
		}
		if !changed {
			out = ses
			return nil
		}

		if er := tx.Save(ses).Error; er != nil {
			return er
		}
		if er := ctl.syncTeamReviewsWithSession(tx, ses, actorID(c), now); er != nil {
			return er
		}
		out = ses
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonUpdated(c, "Session updated", d.SessionFromModel(out))
}

// syncTeamReviewsWithSession menjaga review tetap konsisten dengan alokasi
// faculty terbaru: setiap team ber-project yang rosternya beririsan dengan
// roster session (pasca-update) dihitung ulang fasenya, review PENDING-nya
// ditransfer ke faculty session, lalu status team dipaksa IN_PROGRESS.
func (ctl *LabSessionController) syncTeamReviewsWithSession(
	tx *gorm.DB,
	ses *m.LabSessionModel,
	assignedBy *uuid.UUID,
	now time.Time,
) error {
	if len(ses.LabSessionStudentIDs) == 0 {
		return nil
	}

	var teams []teamModel.TeamModel
	if err := tx.
		Where("team_scope_id = ? AND team_deleted_at IS NULL", ses.LabSessionScopeID).
		Where("team_student_ids && ?", ses.LabSessionStudentIDs).
		Find(&teams).Error; err != nil {
		return err
	}

	for i := range teams {
		team := &teams[i]
		if team.TeamProjectID == nil {
			continue
		}

		var reviews []assignModel.ReviewModel
		if err := tx.Where("review_team_id = ?", team.TeamID).Find(&reviews).Error; err != nil {
			return err
		}
		var assignments []assignModel.ReviewAssignmentModel
		if err := tx.Where("review_assignment_project_id = ?", *team.TeamProjectID).
			Find(&assignments).Error; err != nil {
			return err
		}

		phase := assignService.ComputeNextPhase(team, reviews, assignments, now)
		if _, err := assignService.TransferPendingReview(
			tx, team, ses.LabSessionFacultyID, phase, assignedBy, now,
		); err != nil {
			return err
		}

		// Sinkronisasi jadwal menimpa tabel transisi dengan sengaja.
		team.ForceStatus(teamModel.TeamStatusInProgress)
		if err := tx.Save(team).Error; err != nil {
			return err
		}
	}
	return nil
}

/* =========================
   Copy-day & swap-venues
   ========================= */

// POST /sessions/copy-day — replikasi jadwal fromDate ke toDate dengan jam,
// venue, faculty, dan roster yang sama. Copy yang menabrak jadwal faculty di
// tanggal tujuan dilaporkan skipped.
func (ctl *LabSessionController) CopyDay(c *fiber.Ctx) error {
	var req d.CopyDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	fromDate, err := parseYMDLocal(req.FromDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "from_date tidak valid (YYYY-MM-DD)")
	}
	toDate, err := parseYMDLocal(req.ToDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "to_date tidak valid (YYYY-MM-DD)")
	}
	if s.SameDay(fromDate, toDate) {
		return helper.JsonError(c, http.StatusBadRequest, "from_date dan to_date tidak boleh sama")
	}

	summary := helper.NewBatchSummary()
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		dayStart, dayEnd := s.DayBounds(fromDate)

		q := tx.Where("lab_session_deleted_at IS NULL").
			Where("lab_session_start_time >= ? AND lab_session_start_time < ?", dayStart, dayEnd)
		if req.ScopeID != nil {
			q = q.Where("lab_session_scope_id = ?", *req.ScopeID)
		}
		var sources []m.LabSessionModel
		if er := q.Order("lab_session_start_time ASC").Find(&sources).Error; er != nil {
			return er
		}

		for i := range sources {
			src := &sources[i]
			key := src.LabSessionID.String()

			newStart := s.MapToDay(src.LabSessionStartTime, toDate)
			newEnd := s.MapToDay(src.LabSessionEndTime, toDate)

			conflict, er := s.HasFacultyConflict(tx, src.LabSessionFacultyID, newStart, newEnd, nil)
			if er != nil {
				return er
			}
			if conflict {
				summary.AddSkipped(key, "Faculty sudah punya session di tanggal tujuan")
				continue
			}

			dup := m.LabSessionModel{
				LabSessionScopeID:    src.LabSessionScopeID,
				LabSessionVenueID:    src.LabSessionVenueID,
				LabSessionFacultyID:  src.LabSessionFacultyID,
				LabSessionStartTime:  newStart,
				LabSessionEndTime:    newEnd,
				LabSessionStudentIDs: src.LabSessionStudentIDs,
			}
			// savepoint per copy: gagal insert satu session tidak mematikan
			// transaksi untuk session berikutnya
			if er := tx.Transaction(func(itemTx *gorm.DB) error {
				return itemTx.Create(&dup).Error
			}); er != nil {
				summary.AddFailed(key, er.Error())
				continue
			}
			summary.AddSuccess(key, "Disalin ke "+req.ToDate)
		}
		return nil
	}); err != nil {
		log.Printf("[LabSession.CopyDay] error: %v", err)
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "Copy day selesai", summary)
}

// POST /sessions/swap-venues — tukar venue A ↔ B untuk semua session pada
// satu tanggal. ID session di-snapshot sebelum mutasi supaya session yang
// baru dipindah tidak tertangkap filter lawannya di tengah transaksi.
func (ctl *LabSessionController) SwapVenues(c *fiber.Ctx) error {
	var req d.SwapVenuesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if req.VenueA == req.VenueB {
		return helper.JsonError(c, http.StatusBadRequest, "venue_a dan venue_b tidak boleh sama")
	}

	date, err := parseYMDLocal(req.Date)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date tidak valid (YYYY-MM-DD)")
	}

	var swapped int64
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		dayStart, dayEnd := s.DayBounds(date)

		collectIDs := func(venueID uuid.UUID) ([]uuid.UUID, error) {
			var ids []uuid.UUID
			err := tx.Model(&m.LabSessionModel{}).
				Where("lab_session_deleted_at IS NULL").
				Where("lab_session_venue_id = ?", venueID).
				Where("lab_session_start_time >= ? AND lab_session_start_time < ?", dayStart, dayEnd).
				Pluck("lab_session_id", &ids).Error
			return ids, err
		}

		idsA, er := collectIDs(req.VenueA)
		if er != nil {
			return er
		}
		idsB, er := collectIDs(req.VenueB)
		if er != nil {
			return er
		}

		if len(idsA) > 0 {
			res := tx.Model(&m.LabSessionModel{}).
				Where("lab_session_id IN ?", idsA).
				Update("lab_session_venue_id", req.VenueB)
			if res.Error != nil {
				return res.Error
			}
			swapped += res.RowsAffected
		}
		if len(idsB) > 0 {
			res := tx.Model(&m.LabSessionModel{}).
				Where("lab_session_id IN ?", idsB).
				Update("lab_session_venue_id", req.VenueA)
			if res.Error != nil {
				return res.Error
			}
			swapped += res.RowsAffected
		}
		return nil
	}); err != nil {
		return writePGError(c, err)
	}

	return helper.JsonOK(c, "Venue swap selesai", fiber.Map{"swapped": swapped})
}

/* =========================
   Reads
   ========================= */

// GET /sessions?date=&scope_id=&faculty_id=
func (ctl *LabSessionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.LabSessionModel{}).
		Where("lab_session_deleted_at IS NULL")
	if ds := strings.TrimSpace(c.Query("date")); ds != "" {
		date, err := parseYMDLocal(ds)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "date tidak valid (YYYY-MM-DD)")
		}
		dayStart, dayEnd := s.DayBounds(date)
		q = q.Where("lab_session_start_time >= ? AND lab_session_start_time < ?", dayStart, dayEnd)
	}
	if scope := strings.TrimSpace(c.Query("scope_id")); scope != "" {
		scopeID, err := uuid.Parse(scope)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "scope_id tidak valid")
		}
		q = q.Where("lab_session_scope_id = ?", scopeID)
	}
	if fid := strings.TrimSpace(c.Query("faculty_id")); fid != "" {
		facultyID, err := uuid.Parse(fid)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "faculty_id tidak valid")
		}
		q = q.Where("lab_session_faculty_id = ?", facultyID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writePGError(c, err)
	}
	var rows []m.LabSessionModel
	if err := q.Order("lab_session_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return writePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", d.SessionsFromModels(rows), &p)
}

// GET /sessions/:id
func (ctl *LabSessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	ses, err := findSession(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return writePGError(c, err)
	}
	return helper.JsonOK(c, "ok", d.SessionFromModel(ses))
}

// DELETE /sessions/:id
func (ctl *LabSessionController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	ses, err := findSession(ctl.DB.WithContext(c.Context()), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return writePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(ses).Error; err != nil {
		return writePGError(c, err)
	}
	return helper.JsonDeleted(c, "Session deleted", d.SessionFromModel(ses))
}
