package handlers

import (
	"net/http"
	"time"

	"glowbook/middleware"
	"glowbook/models"
	"glowbook/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateHold pins a slot for the authenticated client while they complete
// checkout.
func (hb *HandlerBundle) CreateHold(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		OfferingID     string    `json:"offeringId"`
		ScheduledFor   time.Time `json:"scheduledFor"`
		LocationType   string    `json:"locationType"`
		LocationID     string    `json:"locationId"`
		PreviousHoldID string    `json:"previousHoldId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	locType, ok := models.ParseLocationType(input.LocationType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationType must be SALON or MOBILE"})
		return
	}

	hold, err := hb.BookingService.CreateHold(c.Request.Context(), actor, booking.CreateHoldRequest{
		OfferingID:     input.OfferingID,
		ScheduledFor:   input.ScheduledFor,
		LocationType:   locType,
		LocationID:     input.LocationID,
		PreviousHoldID: input.PreviousHoldID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hold)
}

// GetHold returns the caller's hold if it is still alive.
func (hb *HandlerBundle) GetHold(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	hold, err := hb.BookingService.GetHold(c.Request.Context(), actor, c.Param("holdID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, hold)
}

// ReleaseHold drops a hold early. Releasing an expired or already-released
// hold succeeds.
func (hb *HandlerBundle) ReleaseHold(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := hb.BookingService.ReleaseHold(c.Request.Context(), actor, c.Param("holdID")); err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"released": true})
}
