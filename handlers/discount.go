package handlers

import (
	"net/http"
	"time"

	"glowbook/middleware"
	"glowbook/models"

	"github.com/gin-gonic/gin"
)

// QuoteLastMinuteDiscount returns the discount currently applicable to a
// booking's slot.
func (hb *HandlerBundle) QuoteLastMinuteDiscount(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	quote, err := hb.BookingService.QuoteLastMinuteDiscount(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GetLastMinuteSettings returns the authenticated professional's last-minute
// discount configuration.
func (hb *HandlerBundle) GetLastMinuteSettings(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	settings, err := hb.DiscountRepo.GetSettings(c.Request.Context(), actor.ID)
	if err != nil {
		// No settings yet means discounting is simply off.
		c.JSON(http.StatusOK, models.LastMinuteSettings{ProfessionalID: actor.ID, Enabled: false})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// SaveLastMinuteSettings replaces the authenticated professional's last-minute
// discount configuration.
func (hb *HandlerBundle) SaveLastMinuteSettings(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var settings models.LastMinuteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	for _, r := range settings.Rules {
		if r.Percent < 0 || r.Percent > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "discount percent must be between 0 and 50"})
			return
		}
	}

	settings.ProfessionalID = actor.ID
	settings.UpdatedAt = time.Now().UTC()
	if err := hb.DiscountRepo.SaveSettings(c.Request.Context(), &settings); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}
