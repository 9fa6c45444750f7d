package handlers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atyraumap/i18n"
	"atyraumap/importer"
	"atyraumap/moderation"
	"atyraumap/types"
)

// Login checks the shared secret. A wrong secret redisplays the prompt with
// an inline error; there is no lockout or rate limit because this gate is
// not a security boundary.
func Login(c *gin.Context, wf *moderation.Workflow) {
	var body struct {
		Secret string `json:"secret"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad login body"})
		return
	}
	if !wf.Session().Login(body.Secret) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": i18n.T(queryLang(c), "login_error")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

func Logout(c *gin.Context, wf *moderation.Workflow) {
	wf.Session().Logout()
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}

// ImportCrimeRecords takes the raw tab-separated police export in the
// request body and bulk-writes the resolved crime points.
func ImportCrimeRecords(c *gin.Context, wf *moderation.Workflow) {
	records, err := importer.Parse(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable export"})
		return
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	points := importer.Convert(records, rng)
	written, err := wf.ImportPoints(points)
	if err != nil {
		if written == 0 {
			moderationError(c, err)
			return
		}
		c.JSON(http.StatusPartialContent, gin.H{"imported": written, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": written, "category": types.Crime})
}
