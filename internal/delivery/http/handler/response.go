package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// respondError maps domain errors to status codes. Unknown errors are
// logged and hidden behind a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var verr *domain.ProfileValidationError
	switch {
	case errors.Is(err, domain.ErrProfileNotFound), errors.Is(err, domain.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrProfileExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrInvalidProfilePair),
		errors.Is(err, domain.ErrSameProfile),
		errors.Is(err, domain.ErrInvalidCriteria):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.ErrorContext(c.Request.Context(), fallback, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}
