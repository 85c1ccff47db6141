package handler

import (
	"log/slog"
	"net/http"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/report"
	"github.com/gin-gonic/gin"
)

type CompatibilityHandler struct {
	reportUseCase *report.ReportUseCase
	logger        *slog.Logger
}

func NewCompatibilityHandler(reportUseCase *report.ReportUseCase, logger *slog.Logger) *CompatibilityHandler {
	return &CompatibilityHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

// AnalyzeRequest carries two profiles analyzed without being stored.
type AnalyzeRequest struct {
	ProfileA *domain.UserProfile `json:"profile_a" binding:"required"`
	ProfileB *domain.UserProfile `json:"profile_b" binding:"required"`
}

type ExplanationResponse struct {
	ProfileA    string `json:"profile_a"`
	ProfileB    string `json:"profile_b"`
	Explanation string `json:"explanation"`
}

// Analyze handles POST /compatibility/analyze
// @Summary Analyze two profiles
// @Description Ad hoc analysis; the report is neither cached nor stored
// @Tags compatibility
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Profiles"
// @Success 200 {object} domain.CompatibilityReport
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /compatibility/analyze [post]
func (h *CompatibilityHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	r, err := h.reportUseCase.Analyze(c.Request.Context(), req.ProfileA, req.ProfileB)
	if err != nil {
		respondError(c, h.logger, err, "failed to analyze compatibility")
		return
	}

	c.JSON(http.StatusOK, r)
}

// GetReport handles GET /compatibility/:a/:b
// @Summary Get compatibility report
// @Description Cached report of two stored profiles; regenerated when either changed
// @Tags compatibility
// @Security BearerAuth
// @Produce json
// @Param a path string true "Profile A ID"
// @Param b path string true "Profile B ID"
// @Success 200 {object} domain.CompatibilityReport
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /compatibility/{a}/{b} [get]
func (h *CompatibilityHandler) GetReport(c *gin.Context) {
	r, err := h.reportUseCase.GetReport(c.Request.Context(), c.Param("a"), c.Param("b"))
	if err != nil {
		respondError(c, h.logger, err, "failed to get compatibility report")
		return
	}

	c.JSON(http.StatusOK, r)
}

// GetExplanation handles GET /compatibility/:a/:b/explanation
// @Summary Explain compatibility
// @Tags compatibility
// @Security BearerAuth
// @Produce json
// @Param a path string true "Profile A ID"
// @Param b path string true "Profile B ID"
// @Success 200 {object} ExplanationResponse
// @Failure 404 {object} ErrorResponse
// @Router /compatibility/{a}/{b}/explanation [get]
func (h *CompatibilityHandler) GetExplanation(c *gin.Context) {
	a, b := c.Param("a"), c.Param("b")
	text, err := h.reportUseCase.Explain(c.Request.Context(), a, b)
	if err != nil {
		respondError(c, h.logger, err, "failed to explain compatibility")
		return
	}

	c.JSON(http.StatusOK, ExplanationResponse{ProfileA: a, ProfileB: b, Explanation: text})
}

// ListReports handles GET /profiles/:id/reports
// @Summary List stored reports of a profile
// @Tags compatibility
// @Security BearerAuth
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {array} domain.CompatibilityReport
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id}/reports [get]
func (h *CompatibilityHandler) ListReports(c *gin.Context) {
	reports, err := h.reportUseCase.ListReports(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err, "failed to list reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// DeleteReport handles DELETE /compatibility/:a/:b
// @Summary Delete compatibility report
// @Description Evicts the pair's cached report and removes the stored one
// @Tags compatibility
// @Security BearerAuth
// @Param a path string true "Profile A ID"
// @Param b path string true "Profile B ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /compatibility/{a}/{b} [delete]
func (h *CompatibilityHandler) DeleteReport(c *gin.Context) {
	if err := h.reportUseCase.DeleteReport(c.Request.Context(), c.Param("a"), c.Param("b")); err != nil {
		respondError(c, h.logger, err, "failed to delete compatibility report")
		return
	}

	c.Status(http.StatusNoContent)
}
