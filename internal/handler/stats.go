package handler

import (
	"errors"
	"net/http"

	"coursetally/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the consumer's running aggregate
type StatsHandler struct {
	statsService service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats handles GET /api/v1/stats
// @Summary Get the full aggregate
// @Description Returns visit counts per weekday per course for the current run
// @Tags stats
// @Produce json
// @Success 200 {object} model.StatsResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.statsService.Snapshot())
}

// GetCourseStats handles GET /api/v1/stats/:course
// @Summary Get one course's counts
// @Description Returns per-weekday visit counts for a single course
// @Tags stats
// @Produce json
// @Param course path string true "Course label"
// @Success 200 {object} map[string]int64
// @Failure 404 {object} map[string]string
// @Router /api/v1/stats/{course} [get]
func (h *StatsHandler) GetCourseStats(c *gin.Context) {
	course := c.Param("course")

	counts, ok := h.statsService.CourseCounts(course)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "course not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course": course,
		"counts": counts,
	})
}

// GetLiveCourseStats handles GET /api/v1/live/:course
// @Summary Get one course's mirrored counts
// @Description Returns per-weekday visit counts from the Redis mirror
// @Tags stats
// @Produce json
// @Param course path string true "Course label"
// @Success 200 {object} map[string]int64
// @Failure 503 {object} map[string]string
// @Router /api/v1/live/{course} [get]
func (h *StatsHandler) GetLiveCourseStats(c *gin.Context) {
	course := c.Param("course")

	counts, err := h.statsService.LiveCourseCounts(c.Request.Context(), course)
	if err != nil {
		if errors.Is(err, service.ErrLiveStatsDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code":    503,
				"message": "live stats mirror is disabled",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "failed to read live stats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"course": course,
		"counts": counts,
	})
}
