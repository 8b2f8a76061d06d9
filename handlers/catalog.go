package handlers

import (
	"net/http"

	"opsdeck/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the immutable reference data.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Tenants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tenants": h.catalog.Tenants})
}

func (h *CatalogHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": h.catalog.Resources})
}

func (h *CatalogHandler) Meters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meters": h.catalog.Meters})
}
