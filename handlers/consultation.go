package handlers

import (
	"net/http"

	"glowbook/middleware"
	"glowbook/models"
	"glowbook/services/booking"

	"github.com/gin-gonic/gin"
)

// ProposeConsultation records the professional's in-consultation offer.
func (hb *HandlerBundle) ProposeConsultation(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		Services []models.ProposedService `json:"services"`
		Total    float64                  `json:"total"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	approval, err := hb.BookingService.ProposeConsultation(c.Request.Context(), actor, c.Param("bookingID"), booking.ProposalRequest{
		Services: input.Services,
		Total:    input.Total,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, approval)
}

// ApproveConsultation accepts the proposal and unlocks the session.
func (hb *HandlerBundle) ApproveConsultation(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := hb.BookingService.ApproveConsultation(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RejectConsultation declines the proposal and returns the session to
// consultation for renegotiation.
func (hb *HandlerBundle) RejectConsultation(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := hb.BookingService.RejectConsultation(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
