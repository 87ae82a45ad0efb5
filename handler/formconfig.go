package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kimo/alma-take-home-assignment/pkg/logger"
	"github.com/kimo/alma-take-home-assignment/service"
)

type FormConfigHandler struct {
	store *service.FormConfigStore
}

func NewFormConfigHandler(store *service.FormConfigStore) *FormConfigHandler {
	return &FormConfigHandler{store: store}
}

// Get returns the current form configuration document. Public: the intake
// form needs it to render the country list.
func (h *FormConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Get())
}

// Update replaces the form configuration document wholesale. The document
// must be a JSON object shaped like a JSON Schema for an object, and a
// country.enum, if present, must be an array of strings.
func (h *FormConfigHandler) Update(c *gin.Context) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	doc, ok := body.(map[string]any)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schema must be a JSON object"})
		return
	}

	properties, hasProperties := doc["properties"].(map[string]any)
	if doc["type"] != "object" || !hasProperties {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid JSON Schema: must have type 'object' and a properties field",
		})
		return
	}

	if country, ok := properties["country"].(map[string]any); ok {
		if enum, present := country["enum"]; present && !isStringArray(enum) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "country.enum must be an array of strings",
			})
			return
		}
	}

	h.store.Set(doc)

	logger.Info(c.Request.Context(), "form configuration updated")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"schema":  h.store.Get(),
	})
}

func isStringArray(v any) bool {
	arr, ok := v.([]any)
	if !ok {
		return false
	}
	for _, e := range arr {
		if _, ok := e.(string); !ok {
			return false
		}
	}
	return true
}
