package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gdugdh24/spiritatlas-backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUseCase    *match.MatchUseCase
	defaultMinScore float64
	logger          *slog.Logger
}

func NewMatchHandler(matchUseCase *match.MatchUseCase, defaultMinScore float64, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{
		matchUseCase:    matchUseCase,
		defaultMinScore: defaultMinScore,
		logger:          logger,
	}
}

// FindMatchesRequest is the optional search body. An absent min_score uses
// the configured default.
type FindMatchesRequest struct {
	MinScore            *float64                       `json:"min_score"`
	MinLevel            domain.CompatibilityLevel      `json:"min_level"`
	PreferredCategories []domain.CompatibilityCategory `json:"preferred_categories"`
	MaxDistanceKm       float64                        `json:"max_distance_km"`
	AgeRange            *domain.AgeRange               `json:"age_range"`
	Limit               int                            `json:"limit"`
}

func (r FindMatchesRequest) criteria(defaultMinScore float64) domain.MatchCriteria {
	c := domain.MatchCriteria{
		MinScore:            defaultMinScore,
		MinLevel:            r.MinLevel,
		PreferredCategories: r.PreferredCategories,
		MaxDistanceKm:       r.MaxDistanceKm,
		AgeRange:            r.AgeRange,
		Limit:               r.Limit,
	}
	if r.MinScore != nil {
		c.MinScore = *r.MinScore
	}
	return c
}

// FindMatches handles POST /profiles/:id/matches
// @Summary Find matches
// @Description Rank stored profiles against the given profile
// @Tags matches
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param request body FindMatchesRequest false "Search criteria"
// @Success 200 {array} domain.ProfileMatch
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /profiles/{id}/matches [post]
func (h *MatchHandler) FindMatches(c *gin.Context) {
	var req FindMatchesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c)
		return
	}

	matches, err := h.matchUseCase.FindForProfile(c.Request.Context(), c.Param("id"), req.criteria(h.defaultMinScore))
	if err != nil {
		respondError(c, h.logger, err, "failed to find matches")
		return
	}

	c.JSON(http.StatusOK, matches)
}
