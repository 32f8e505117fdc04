package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/codequiz-api/internal/middleware"
	"github.com/yourusername/codequiz-api/internal/service"
)

// CatalogHandler отдаёт каталог языков и категорий
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Languages обрабатывает GET /api/languages
func (h *CatalogHandler) Languages(c *gin.Context) {
	languages, err := h.catalogService.Languages(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"languages": languages})
}

// Categories обрабатывает GET /api/languages/:language_id/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	languageID, ok := middleware.ExtractUintParam(c, "language_id")
	if !ok {
		return
	}

	categories, err := h.catalogService.Categories(c.Request.Context(), languageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Search обрабатывает GET /api/catalog/search?q=lang+:+category
func (h *CatalogHandler) Search(c *gin.Context) {
	result, err := h.catalogService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": result})
}
