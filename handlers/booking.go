package handlers

import (
	"net/http"
	"time"

	"glowbook/middleware"
	"glowbook/models"
	"glowbook/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateBooking realizes a hold into a pending booking.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		HoldID     string `json:"holdId"`
		OfferingID string `json:"offeringId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.BookingService.CreateBooking(c.Request.Context(), actor, booking.CreateBookingRequest{
		HoldID:     input.HoldID,
		OfferingID: input.OfferingID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// RescheduleBooking moves a booking onto a new held slot.
func (hb *HandlerBundle) RescheduleBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		HoldID       string    `json:"holdId"`
		ScheduledFor time.Time `json:"scheduledFor"`
		LocationType string    `json:"locationType"`
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

	result, err := hb.BookingService.RescheduleBooking(c.Request.Context(), actor, booking.RescheduleRequest{
		BookingID:    c.Param("bookingID"),
		HoldID:       input.HoldID,
		ScheduledFor: input.ScheduledFor,
		LocationType: locType,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AcceptBooking moves a pending booking to ACCEPTED.
func (hb *HandlerBundle) AcceptBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := hb.BookingService.SetBookingStatus(c.Request.Context(), actor, c.Param("bookingID"), models.StatusAccepted)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CompleteBooking marks a booking COMPLETED.
func (hb *HandlerBundle) CompleteBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := hb.BookingService.CompleteBooking(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CancelBooking cancels a booking. Either party may cancel.
func (hb *HandlerBundle) CancelBooking(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	result, err := hb.BookingService.CancelBooking(c.Request.Context(), actor, c.Param("bookingID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SetSessionStep advances the in-session workflow for a booking.
func (hb *HandlerBundle) SetSessionStep(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		Step string `json:"step"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	step, ok := models.ParseSessionStep(input.Step)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown session step"})
		return
	}

	updated, err := hb.BookingService.SetSessionStep(c.Request.Context(), actor, c.Param("bookingID"), step)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
