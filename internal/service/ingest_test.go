package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"coursetally/internal/mocks"
	"coursetally/internal/model"
	"coursetally/internal/mq"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitMessage(date, course string, count int64) *mq.VisitMessage {
	return &mq.VisitMessage{
		MessageID:   "msg-1",
		Date:        date,
		Course:      course,
		Count:       count,
		PublishedAt: time.Now(),
	}
}

func TestNewIngestService(t *testing.T) {
	svc := NewIngestService(nil, nil, "charts/attendance.png")

	assert.NotNil(t, svc)
	assert.NotNil(t, svc.tally)
}

func TestIngestService_HandleVisit(t *testing.T) {
	t.Run("valid message increments tally and archives", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockVisitStoreInterface(ctrl)
		mockStore.EXPECT().
			SaveVisitLog(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visit *model.VisitLog) error {
				assert.Equal(t, "Math", visit.Course)
				assert.Equal(t, "Monday", visit.Weekday)
				assert.Equal(t, int64(3), visit.Count)
				return nil
			})

		svc := NewIngestService(mockStore, nil, "")

		err := svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3))
		require.NoError(t, err)

		assert.Equal(t, int64(3), svc.tally.Get(time.Monday, "Math"))
	})

	t.Run("duplicate deliveries each increment", func(t *testing.T) {
		svc := NewIngestService(nil, nil, "")

		msg := visitMessage("2024-01-01", "Math", 3)
		require.NoError(t, svc.HandleVisit(context.Background(), msg))
		require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 2)))

		// at-least-once: counts only ever go up
		assert.Equal(t, int64(5), svc.tally.Get(time.Monday, "Math"))
	})

	t.Run("invalid message is skipped without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// No SaveVisitLog expected
		mockStore := mocks.NewMockVisitStoreInterface(ctrl)

		svc := NewIngestService(mockStore, nil, "")

		err := svc.HandleVisit(context.Background(), visitMessage("not-a-date", "Math", 3))
		assert.NoError(t, err)
		assert.Equal(t, int64(0), svc.tally.TotalRecords())
	})

	t.Run("archive failure does not fail the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockStore := mocks.NewMockVisitStoreInterface(ctrl)
		mockStore.EXPECT().SaveVisitLog(gomock.Any(), gomock.Any()).Return(assert.AnError)

		svc := NewIngestService(mockStore, nil, "")

		err := svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3))
		assert.NoError(t, err)
		// tally already counted it
		assert.Equal(t, int64(3), svc.tally.Get(time.Monday, "Math"))
	})

	t.Run("mirrors counts to the live store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLive := mocks.NewMockLiveStatsInterface(ctrl)
		mockLive.EXPECT().
			IncrementVisitCount(gomock.Any(), "Monday", "Math", int64(3)).
			Return(int64(3), nil)

		svc := NewIngestService(nil, mockLive, "")

		err := svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3))
		assert.NoError(t, err)
	})

	t.Run("mirror failure does not fail the message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLive := mocks.NewMockLiveStatsInterface(ctrl)
		mockLive.EXPECT().
			IncrementVisitCount(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), assert.AnError)

		svc := NewIngestService(nil, mockLive, "")

		err := svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3))
		assert.NoError(t, err)
	})
}

func TestIngestService_Snapshot(t *testing.T) {
	svc := NewIngestService(nil, nil, "")

	require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3)))
	require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 2)))

	snap := svc.Snapshot()
	require.Len(t, snap.Weekdays, 1)
	assert.Equal(t, "Monday", snap.Weekdays[0].Weekday)
	assert.Equal(t, int64(5), snap.Weekdays[0].Courses[0].Count)
	assert.Equal(t, int64(2), snap.TotalRecords)
	assert.Equal(t, int64(5), snap.TotalVisits)
}

func TestIngestService_CourseCounts(t *testing.T) {
	svc := NewIngestService(nil, nil, "")

	require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3)))
	require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-03", "Math", 2)))

	counts, ok := svc.CourseCounts("Math")
	require.True(t, ok)
	assert.Equal(t, map[string]int64{"Monday": 3, "Wednesday": 2}, counts)

	_, ok = svc.CourseCounts("History")
	assert.False(t, ok)
}

func TestIngestService_LiveCourseCounts(t *testing.T) {
	t.Run("disabled mirror", func(t *testing.T) {
		svc := NewIngestService(nil, nil, "")

		_, err := svc.LiveCourseCounts(context.Background(), "Math")
		assert.ErrorIs(t, err, ErrLiveStatsDisabled)
	})

	t.Run("enabled mirror", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLive := mocks.NewMockLiveStatsInterface(ctrl)
		mockLive.EXPECT().
			GetCourseCounts(gomock.Any(), "Math").
			Return(map[string]int64{"Monday": 5}, nil)

		svc := NewIngestService(nil, mockLive, "")

		counts, err := svc.LiveCourseCounts(context.Background(), "Math")
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"Monday": 5}, counts)
	})
}

func TestIngestService_RenderNow(t *testing.T) {
	t.Run("no data is not an error", func(t *testing.T) {
		svc := NewIngestService(nil, nil, filepath.Join(t.TempDir(), "chart.png"))
		assert.NoError(t, svc.RenderNow())
	})

	t.Run("writes the chart file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.png")
		svc := NewIngestService(nil, nil, path)

		require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-01", "Math", 3)))
		require.NoError(t, svc.HandleVisit(context.Background(), visitMessage("2024-01-02", "Physics", 1)))

		require.NoError(t, svc.RenderNow())

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})
}
