package music

import (
	"errors"
	"net/http"

	"linkpage-app/internal/domain/music"
	"linkpage-app/internal/domain/platform"
	"linkpage-app/internal/infra/odesli"

	"github.com/gin-gonic/gin"
)

var resolver = odesli.NewClient()

type resolveRequest struct {
	URL      string          `json:"url" binding:"required"`
	Existing []platform.Link `json:"existing"`
}

type resolveResponse struct {
	Title     string          `json:"title"`
	Artist    string          `json:"artist"`
	Cover     string          `json:"cover,omitempty"`
	Platforms []platform.Link `json:"platforms"`
}

type manualAddRequest struct {
	URL      string          `json:"url" binding:"required"`
	Existing []platform.Link `json:"existing"`
}

// POST /music/resolve
//
// Looks the track up through song.link and folds the discovered platform
// links into the caller's existing list. The client sends its current
// platforms and stores the merged result back into the music block's content.
func ResolveTrack(c *gin.Context) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := resolver.Resolve(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not resolve track"})
		return
	}

	merged := music.MergeDiscovered(req.Existing, resolved.Platforms)
	c.JSON(http.StatusOK, resolveResponse{
		Title:     resolved.Title,
		Artist:    resolved.Artist,
		Cover:     resolved.Cover,
		Platforms: merged,
	})
}

// POST /music/manual-add
//
// Classifies a pasted streaming URL and inserts or updates the matching
// platform entry at the front of the list. No network call involved.
func ManualAdd(c *gin.Context) {
	var req manualAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, err := music.ManualAdd(req.Existing, req.URL)
	if errors.Is(err, music.ErrUnrecognizedPlatform) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Could not recognize a streaming platform in that link"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"platforms": next})
}
