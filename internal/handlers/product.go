package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tvshop_back_end/internal/catalog"
)

const productNotFound = "Product not found"

type CatalogHandler struct {
	store *catalog.Store
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListProducts returns the catalog in declaration order, optionally narrowed
// to one category tag with ?category=.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	if tag := c.Query("category"); tag != "" {
		c.JSON(http.StatusOK, h.store.ListByTag(tag))
		return
	}
	c.JSON(http.StatusOK, h.store.List())
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.store.Lookup(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) || errors.Is(err, catalog.ErrInvalidProductID) {
			c.JSON(http.StatusNotFound, gin.H{"error": productNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}
