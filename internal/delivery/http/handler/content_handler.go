package handler

import (
	"net/http"
	"strings"

	"github.com/gdugdh24/spiritatlas-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	catalog []domain.TantricContent
}

func NewContentHandler(catalog []domain.TantricContent) *ContentHandler {
	return &ContentHandler{catalog: catalog}
}

// ListContent handles GET /tantric-content
// @Summary List tantric content
// @Description Catalog entries matched into reports, optionally filtered by type
// @Tags content
// @Security BearerAuth
// @Produce json
// @Param type query string false "Content type, e.g. KAMA_SUTRA"
// @Success 200 {array} domain.TantricContent
// @Router /tantric-content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	kind := domain.TantricContentType(strings.ToUpper(c.Query("type")))
	items := make([]domain.TantricContent, 0, len(h.catalog))
	for _, item := range h.catalog {
		if kind == "" || item.ContentType == kind {
			items = append(items, item)
		}
	}

	c.JSON(http.StatusOK, items)
}
