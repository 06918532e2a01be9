// file: internals/features/teams/service/quota_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "reviewku_backend/internals/features/teams/model"
)

// Kuota beban faculty per scope: maksimal 4 team sebagai guide/expert
// (status APPROVED atau PENDING dihitung).
const MaxFacultyTeamsPerScope = 4

var (
	ErrQuotaExceeded   = errors.New("faculty sudah memegang kuota maksimum team di scope ini")
	ErrGuideExpertSame = errors.New("faculty tidak boleh menjadi guide sekaligus expert di team yang sama")
)

// FacultyTeamLoad: query murni, dipanggil sinkron di dalam transaksi yang
// sama dengan mutasi yang dijaganya. Menghitung team dalam scope di mana
// faculty memegang role guide/expert ber-status APPROVED/PENDING, dengan
// team yang sedang dimodifikasi dikecualikan.
func FacultyTeamLoad(tx *gorm.DB, scopeID, facultyID, excludeTeamID uuid.UUID) (int64, error) {
	var count int64
	q := tx.Model(&m.TeamModel{}).
		Where("team_scope_id = ? AND team_deleted_at IS NULL", scopeID).
		Where(
			tx.Where("team_guide_id = ? AND team_guide_status IN ?", facultyID, []m.RoleStatus{m.RoleStatusApproved, m.RoleStatusPending}).
				Or("team_expert_id = ? AND team_expert_status IN ?", facultyID, []m.RoleStatus{m.RoleStatusApproved, m.RoleStatusPending}),
		)
	if excludeTeamID != uuid.Nil {
		q = q.Where("team_id <> ?", excludeTeamID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CheckDualRole: murni. Satu faculty tidak boleh memegang guide sekaligus
// expert di team yang sama.
func CheckDualRole(team *m.TeamModel, facultyID uuid.UUID, asGuide bool) error {
	if asGuide {
		if team.TeamExpertID != nil && *team.TeamExpertID == facultyID {
			return ErrGuideExpertSame
		}
		return nil
	}
	if team.TeamGuideID != nil && *team.TeamGuideID == facultyID {
		return ErrGuideExpertSame
	}
	return nil
}

// CheckQuota: murni. load adalah jumlah team dalam SATU scope di mana
// faculty sudah memegang role APPROVED/PENDING (team yang sedang dimodifikasi
// tidak dihitung); beban di scope lain tidak pernah masuk ke angka ini.
func CheckQuota(load int64) error {
	if load >= MaxFacultyTeamsPerScope {
		return ErrQuotaExceeded
	}
	return nil
}

// EnsureFacultyAssignable menjaga dua invariant sebelum guide/expert
// di-assign: kuota per-scope dan larangan dobel role di satu team.
func EnsureFacultyAssignable(tx *gorm.DB, team *m.TeamModel, facultyID uuid.UUID, asGuide bool) error {
	if err := CheckDualRole(team, facultyID, asGuide); err != nil {
		return err
	}

	load, err := FacultyTeamLoad(tx, team.TeamScopeID, facultyID, team.TeamID)
	if err != nil {
		return err
	}
	return CheckQuota(load)
}
