package handlers

import (
	"net/http"

	"DF-DSGNR/internal/fields"

	"github.com/gin-gonic/gin"
)

type FieldsHandler struct{}

func NewFieldsHandler() *FieldsHandler {
	return &FieldsHandler{}
}

// GetCatalog returns the static category-grouped list of bindable fields
// the editor offers in its field pickers.
func (h *FieldsHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": fields.Catalog()})
}
