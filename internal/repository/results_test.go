package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sivanwunder-commits/flashcards/internal/models"
	mock_repository "github.com/sivanwunder-commits/flashcards/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *ResultsR {
	t.Helper()

	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &ResultsR{db: db}
}

func testResult() models.QuizResult {
	return models.QuizResult{
		SessionID:   "s-1",
		UserID:      1,
		Score:       8,
		Total:       10,
		Accuracy:    80,
		TimeSpentMs: 42000,
		TakenAt:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Answers: []models.QuizAnswer{
			{QuestionID: "c1-q1", Selected: "hablo", SelectedIndex: 2, Correct: true, TimeSpentMs: 2000},
			{QuestionID: "c2-q2", Selected: "comí", SelectedIndex: 0, Correct: false, TimeSpentMs: 3000},
		},
	}
}

func TestResultsR_AddResult(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		result models.QuizResult
	}

	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:    context.Background(),
				result: testResult(),
			},
			f: func(mqi *mock_repository.MockQueryI) {
				// One insert for the result, one per answer.
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(3)
			},
			wantErr: false,
		},
		{
			name: "failed result insert",
			args: args{
				ctx:    context.Background(),
				result: testResult(),
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
		{
			name: "failed answer insert",
			args: args{
				ctx:    context.Background(),
				result: testResult(),
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("exec error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newResultsMock(t, ctrl, tt.f)

			err := repo.AddResult(tt.args.ctx, tt.args.result)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestResultsR_Stats(t *testing.T) {
	t.Parallel()

	t.Run("success computes accuracy", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newResultsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
					stats := dest.(*models.QuizStats)
					stats.SessionCount = 4
					stats.QuestionCount = 40
					stats.CorrectCount = 30
					return nil
				})
		})

		stats, err := repo.Stats(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, 4, stats.SessionCount)
		assert.InDelta(t, 75.0, stats.Accuracy, 0.001)
	})

	t.Run("no stored results means zero accuracy", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newResultsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)
		})

		stats, err := repo.Stats(context.Background(), 1)

		require.NoError(t, err)
		assert.Zero(t, stats.Accuracy)
	})

	t.Run("failed query", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newResultsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				GetContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("get error"))
		})

		_, err := repo.Stats(context.Background(), 1)

		require.Error(t, err)
	})
}

func TestResultsR_RecentResults(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newResultsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)
		})

		results, err := repo.RecentResults(context.Background(), 1, 10)

		require.NoError(t, err)
		assert.NotNil(t, results)
	})

	t.Run("failed select", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := newResultsMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
			mqi.EXPECT().
				SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(errors.New("select error"))
		})

		_, err := repo.RecentResults(context.Background(), 1, 10)

		require.Error(t, err)
	})
}
