package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atyraumap/datastore"
	"atyraumap/moderation"
)

// SubmitSuggestion is the citizen intake: anyone may post a candidate point.
func SubmitSuggestion(c *gin.Context, wf *moderation.Workflow) {
	var draft moderation.SuggestionDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad suggestion draft"})
		return
	}
	sg, err := wf.SubmitSuggestion(draft)
	if err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, sg)
}

// ListSuggestions shows the pending moderation queue, oldest first.
func ListSuggestions(c *gin.Context, wf *moderation.Workflow, store *datastore.Store) {
	if !wf.Session().Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin login required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": store.Suggestions()})
}

// ApproveSuggestion promotes a suggestion with the moderator's photo
// selection. The chosen photos are the hard precondition.
func ApproveSuggestion(c *gin.Context, wf *moderation.Workflow) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad suggestion id"})
		return
	}
	var body struct {
		Photos []string `json:"photos"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad approval body"})
		return
	}
	point, err := wf.ApproveSuggestion(c.Request.Context(), id, body.Photos)
	if err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// RejectSuggestion deletes without promoting; requires ?confirmed=1.
func RejectSuggestion(c *gin.Context, wf *moderation.Workflow) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad suggestion id"})
		return
	}
	if err := wf.RejectSuggestion(id, c.Query("confirmed") == "1"); err != nil {
		moderationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rejected": id})
}
