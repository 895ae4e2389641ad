package handlers

import (
	"net/http"
	"strconv"

	"glowbook/models"
	"glowbook/services/booking"

	"github.com/gin-gonic/gin"
)

// GetDayAvailability returns the bookable start times for one professional,
// location type and local calendar day.
func (hb *HandlerBundle) GetDayAvailability(c *gin.Context) {
	locType, ok := models.ParseLocationType(c.Query("locationType"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationType must be SALON or MOBILE"})
		return
	}

	req := booking.AvailabilityRequest{
		ProfessionalID: c.Query("professionalId"),
		ServiceID:      c.Query("serviceId"),
		LocationType:   locType,
		LocationID:     c.Query("locationId"),
		Date:           c.Query("date"),
	}
	if v := c.Query("step"); v != "" {
		step, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "step must be an integer"})
			return
		}
		req.StepMinutes = step
	}
	if v := c.Query("lead"); v != "" {
		lead, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lead must be an integer"})
			return
		}
		req.LeadTimeMinutes = lead
	}

	day, err := hb.BookingService.DayAvailability(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, day)
}
