package routes

import (
	"github.com/gin-gonic/gin"

	"atyraumap/datastore"
	"atyraumap/handlers"
	"atyraumap/moderation"
	"atyraumap/projection"
	"atyraumap/search"
)

func SetupRouter(store *datastore.Store, wf *moderation.Workflow, proj *projection.Projection, geocoder search.Geocoder) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Atyrau safety map API",
		})
	})

	// public map surface
	api := r.Group("/api/map")
	{
		api.GET("/view", func(c *gin.Context) { handlers.GetViewState(c, proj) })
		api.GET("/points/:id", func(c *gin.Context) { handlers.GetPoint(c, store) })
		api.GET("/deeplink", func(c *gin.Context) { handlers.GetDeepLink(c, proj) })
		api.GET("/strings", handlers.GetStrings)
		api.GET("/photos", handlers.GetPhotos)
		api.GET("/search", func(c *gin.Context) { handlers.SearchPlace(c, geocoder) })
		api.POST("/suggestions", func(c *gin.Context) { handlers.SubmitSuggestion(c, wf) })
	}

	// admin surface; the workflow itself is the enforcement point, these
	// routes just forward
	admin := r.Group("/api/admin")
	{
		admin.POST("/login", func(c *gin.Context) { handlers.Login(c, wf) })
		admin.POST("/logout", func(c *gin.Context) { handlers.Logout(c, wf) })
		admin.POST("/points", func(c *gin.Context) { handlers.AddPoint(c, wf) })
		admin.PUT("/points/:id/position", func(c *gin.Context) { handlers.MovePoint(c, wf) })
		admin.DELETE("/points/:id", func(c *gin.Context) { handlers.DeletePoint(c, wf) })
		admin.GET("/suggestions", func(c *gin.Context) { handlers.ListSuggestions(c, wf, store) })
		admin.POST("/suggestions/:id/approve", func(c *gin.Context) { handlers.ApproveSuggestion(c, wf) })
		admin.POST("/suggestions/:id/reject", func(c *gin.Context) { handlers.RejectSuggestion(c, wf) })
		admin.POST("/import/crimes", func(c *gin.Context) { handlers.ImportCrimeRecords(c, wf) })
	}

	return r
}
