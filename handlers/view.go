package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"atyraumap/datastore"
	"atyraumap/i18n"
	"atyraumap/photos"
	"atyraumap/projection"
	"atyraumap/types"
)

func queryLang(c *gin.Context) types.Lang {
	if c.Query("lang") == string(types.LangKZ) {
		return types.LangKZ
	}
	return types.LangRU
}

// GetViewState returns the full derived render state: markers, counts,
// pending counter, optional heat samples. ?filters=abandoned,unlit limits
// the visible cluster layers; absent means all.
func GetViewState(c *gin.Context, proj *projection.Projection) {
	var filters []types.Category
	if raw := c.Query("filters"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			filters = append(filters, types.Category(strings.TrimSpace(f)))
		}
	}
	heat := c.Query("heat") == "1"
	c.JSON(http.StatusOK, proj.Rebuild(queryLang(c), filters, heat))
}

// GetPoint serves the detail modal: localized fields plus the badge label.
func GetPoint(c *gin.Context, store *datastore.Store) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad point id"})
		return
	}
	p, ok := store.Point(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "point not found"})
		return
	}
	lang := queryLang(c)
	c.JSON(http.StatusOK, gin.H{
		"id":          p.ID,
		"lat":         p.Lat,
		"lng":         p.Lng,
		"category":    p.Category,
		"badge":       i18n.T(lang, types.Categories[p.Category].BadgeKey),
		"title":       p.Title(lang),
		"address":     p.Address(lang),
		"description": p.Description(lang),
		"photos":      p.Photos,
	})
}

// GetDeepLink resolves a shared ?point=<id> URL into a center-and-open
// instruction. Unresolvable links return an empty object, never an error;
// the map just loads normally.
func GetDeepLink(c *gin.Context, proj *projection.Projection) {
	link, ok := proj.ResolveDeepLink(c.Query("point"))
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, link)
}

func GetStrings(c *gin.Context) {
	c.JSON(http.StatusOK, i18n.Table(queryLang(c)))
}

// GetPhotos lists the attachment registry, optionally for one category.
func GetPhotos(c *gin.Context) {
	if raw := c.Query("category"); raw != "" {
		c.JSON(http.StatusOK, photos.ForCategory(types.Category(raw)))
		return
	}
	c.JSON(http.StatusOK, photos.Available)
}
