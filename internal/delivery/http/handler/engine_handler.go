package handler

import (
	"net/http"

	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/compatibility"
	"github.com/gin-gonic/gin"
)

type EngineHandler struct {
	metrics *compatibility.Metrics
}

func NewEngineHandler(metrics *compatibility.Metrics) *EngineHandler {
	return &EngineHandler{metrics: metrics}
}

// GetStats handles GET /engine/stats
// @Summary Engine metrics
// @Description Operation timings and report cache hit rate since start
// @Tags engine
// @Security BearerAuth
// @Produce json
// @Success 200 {object} compatibility.MetricsSnapshot
// @Router /engine/stats [get]
func (h *EngineHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}
