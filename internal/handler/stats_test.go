package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursetally/internal/mocks"
	"coursetally/internal/model"
	"coursetally/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(h *StatsHandler) *gin.Engine {
	router := gin.New()
	v1 := router.Group("/api/v1")
	v1.GET("/stats", h.GetStats)
	v1.GET("/stats/:course", h.GetCourseStats)
	v1.GET("/live/:course", h.GetLiveCourseStats)
	return router
}

func TestNewStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
	h := NewStatsHandler(mockSvc)

	assert.NotNil(t, h)
	assert.Equal(t, mockSvc, h.statsService)
}

func TestStatsHandler_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
	mockSvc.EXPECT().Snapshot().Return(&model.StatsResponse{
		TotalRecords: 2,
		TotalVisits:  5,
		Weekdays: []model.WeekdayStats{
			{
				Weekday: "Monday",
				Courses: []model.CourseStat{{Course: "Math", Count: 5}},
			},
		},
	})

	router := setupRouter(NewStatsHandler(mockSvc))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/stats", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.TotalRecords)
	assert.Equal(t, int64(5), resp.TotalVisits)
	require.Len(t, resp.Weekdays, 1)
	assert.Equal(t, "Monday", resp.Weekdays[0].Weekday)
}

func TestStatsHandler_GetCourseStats(t *testing.T) {
	t.Run("known course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
		mockSvc.EXPECT().CourseCounts("Math").Return(map[string]int64{"Monday": 5}, true)

		router := setupRouter(NewStatsHandler(mockSvc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/Math", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Math")
		assert.Contains(t, w.Body.String(), "Monday")
	})

	t.Run("unknown course", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
		mockSvc.EXPECT().CourseCounts("History").Return(nil, false)

		router := setupRouter(NewStatsHandler(mockSvc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/stats/History", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestStatsHandler_GetLiveCourseStats(t *testing.T) {
	t.Run("mirror enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
		mockSvc.EXPECT().
			LiveCourseCounts(gomock.Any(), "Math").
			Return(map[string]int64{"Monday": 5}, nil)

		router := setupRouter(NewStatsHandler(mockSvc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/live/Math", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("mirror disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
		mockSvc.EXPECT().
			LiveCourseCounts(gomock.Any(), "Math").
			Return(nil, service.ErrLiveStatsDisabled)

		router := setupRouter(NewStatsHandler(mockSvc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/live/Math", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("mirror read failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := mocks.NewMockStatsServiceInterface(ctrl)
		mockSvc.EXPECT().
			LiveCourseCounts(gomock.Any(), "Math").
			Return(nil, assert.AnError)

		router := setupRouter(NewStatsHandler(mockSvc))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/live/Math", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
