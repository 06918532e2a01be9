package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	reviewModel "reviewku_backend/internals/features/reviews/assignments/model"
	teamModel "reviewku_backend/internals/features/teams/model"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestComputeNextPhase(t *testing.T) {
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)
	past := ptrTime(now.Add(-2 * time.Hour))
	future := ptrTime(now.Add(2 * time.Hour))

	review := func(phase int, status reviewModel.ReviewStatus) reviewModel.ReviewModel {
		return reviewModel.ReviewModel{ReviewPhase: phase, ReviewStatus: status}
	}
	assignment := func(phase int, expiresAt *time.Time) reviewModel.ReviewAssignmentModel {
		return reviewModel.ReviewAssignmentModel{
			ReviewAssignmentPhase:           phase,
			ReviewAssignmentAccessExpiresAt: expiresAt,
		}
	}

	tests := []struct {
		name        string
		submission  int
		reviews     []reviewModel.ReviewModel
		assignments []reviewModel.ReviewAssignmentModel
		want        int
	}{
		{
			name: "tanpa riwayat mulai dari fase 1",
			want: 1,
		},
		{
			name:    "review selesai memajukan fase",
			reviews: []reviewModel.ReviewModel{review(1, reviewModel.ReviewStatusCompleted)},
			want:    2,
		},
		{
			name:    "review PENDING tidak settle",
			reviews: []reviewModel.ReviewModel{review(1, reviewModel.ReviewStatusPending)},
			want:    1,
		},
		{
			name:        "jendela expired tetap memajukan fase",
			assignments: []reviewModel.ReviewAssignmentModel{assignment(2, past)},
			want:        3,
		},
		{
			name:        "jendela masih hidup tidak settle",
			assignments: []reviewModel.ReviewAssignmentModel{assignment(2, future)},
			want:        1,
		},
		{
			name:        "jendela tanpa expiry tidak settle",
			assignments: []reviewModel.ReviewAssignmentModel{assignment(2, nil)},
			want:        1,
		},
		{
			name:       "submission phase di depan tidak diturunkan",
			submission: 5,
			reviews:    []reviewModel.ReviewModel{review(1, reviewModel.ReviewStatusCompleted)},
			want:       5,
		},
		{
			name:       "settled di depan submission phase",
			submission: 2,
			reviews: []reviewModel.ReviewModel{
				review(1, reviewModel.ReviewStatusCompleted),
				review(3, reviewModel.ReviewStatusChangesRequired),
			},
			want: 4,
		},
		{
			name:        "max gabungan review dan expired window",
			submission:  1,
			reviews:     []reviewModel.ReviewModel{review(2, reviewModel.ReviewStatusRejected)},
			assignments: []reviewModel.ReviewAssignmentModel{assignment(4, past)},
			want:        5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := &teamModel.TeamModel{
				TeamID:              uuid.New(),
				TeamSubmissionPhase: tt.submission,
			}
			got := ComputeNextPhase(team, tt.reviews, tt.assignments, now)
			if got != tt.want {
				t.Errorf("ComputeNextPhase() = %d, want %d", got, tt.want)
			}
		})
	}
}
