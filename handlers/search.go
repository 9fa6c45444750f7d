package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atyraumap/search"
)

// SearchPlace resolves a free-text query: a coordinate-looking input is
// parsed locally and never leaves the process, anything else goes to the
// bounded geocoder. Typing-driven debounce lives client-side; this endpoint
// answers the settled query. A miss is an empty 200, not an error.
func SearchPlace(c *gin.Context, geocoder search.Geocoder) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	result, err := search.Resolve(c.Request.Context(), geocoder, query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "search unavailable, try again"})
		return
	}
	if result == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, result)
}
