package handlers

import (
	"net/http"

	"glowbook/middleware"
	"glowbook/models"

	"github.com/gin-gonic/gin"
)

// AttachMediaAsset records a reference to an uploaded before or after photo.
func (hb *HandlerBundle) AttachMediaAsset(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		Kind string `json:"kind"`
		URL  string `json:"url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	kind := models.MediaKind(input.Kind)
	if kind != models.MediaBefore && kind != models.MediaAfter {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'before' or 'after'"})
		return
	}

	asset, err := hb.BookingService.AttachMediaAsset(c.Request.Context(), actor, c.Param("bookingID"), kind, input.URL)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// SaveAftercareSummary records the professional's aftercare notes for a
// session.
func (hb *HandlerBundle) SaveAftercareSummary(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		Notes    string   `json:"notes"`
		Products []string `json:"products"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	summary, err := hb.BookingService.SaveAftercareSummary(c.Request.Context(), actor, c.Param("bookingID"), input.Notes, input.Products)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, summary)
}
