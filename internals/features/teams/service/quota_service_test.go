package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	m "reviewku_backend/internals/features/teams/model"
)

func TestCheckQuota(t *testing.T) {
	tests := []struct {
		name    string
		load    int64
		wantErr error
	}{
		{"tanpa beban", 0, nil},
		{"di bawah kuota", 3, nil},
		{"tepat di kuota ditolak", MaxFacultyTeamsPerScope, ErrQuotaExceeded},
		{"di atas kuota ditolak", 7, ErrQuotaExceeded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckQuota(tt.load); !errors.Is(got, tt.wantErr) {
				t.Errorf("CheckQuota(%d) = %v, want %v", tt.load, got, tt.wantErr)
			}
		})
	}
}

func TestCheckDualRole(t *testing.T) {
	faculty := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		guide   *uuid.UUID
		expert  *uuid.UUID
		asGuide bool
		wantErr error
	}{
		{"team kosong, jadi guide", nil, nil, true, nil},
		{"team kosong, jadi expert", nil, nil, false, nil},
		{"sudah expert, jadi guide ditolak", nil, &faculty, true, ErrGuideExpertSame},
		{"sudah guide, jadi expert ditolak", &faculty, nil, false, ErrGuideExpertSame},
		{"expert orang lain, jadi guide boleh", nil, &other, true, nil},
		{"guide orang lain, jadi expert boleh", &other, nil, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := &m.TeamModel{
				TeamID:       uuid.New(),
				TeamGuideID:  tt.guide,
				TeamExpertID: tt.expert,
			}
			if got := CheckDualRole(team, faculty, tt.asGuide); !errors.Is(got, tt.wantErr) {
				t.Errorf("CheckDualRole(asGuide=%v) = %v, want %v", tt.asGuide, got, tt.wantErr)
			}
		})
	}
}
