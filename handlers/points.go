package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atyraumap/moderation"
)

// AddPoint handles direct admin submission of a confirmed point.
func AddPoint(c *gin.Context, wf *moderation.Workflow) {
	var draft moderation.PointDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad point draft"})
		return
	}
	point, err := wf.AddPoint(draft)
	if err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// MovePoint handles marker drag: write through immediately, the client shows
// its transient confirmation once the subscription echoes back.
func MovePoint(c *gin.Context, wf *moderation.Workflow) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad point id"})
		return
	}
	var body struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad position"})
		return
	}
	point, err := wf.UpdatePointPosition(id, body.Lat, body.Lng)
	if err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// DeletePoint requires ?confirmed=1, set after the interactive confirmation
// step. Irreversible.
func DeletePoint(c *gin.Context, wf *moderation.Workflow) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad point id"})
		return
	}
	if err := wf.DeletePoint(id, c.Query("confirmed") == "1"); err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
