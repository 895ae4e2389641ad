package handlers

import (
	"net/http"
	"time"

	"glowbook/middleware"
	"glowbook/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListCalendarBlocks returns the professional's manual blocks overlapping the
// requested range.
func (hb *HandlerBundle) ListCalendarBlocks(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be RFC 3339"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "to must be RFC 3339"})
		return
	}
	if !from.Before(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must precede to"})
		return
	}

	blocks, err := hb.ScheduleRepo.ListBlocks(c.Request.Context(), actor.ID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load calendar blocks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blocks": blocks})
}

// CreateCalendarBlock adds a manual block to the professional's calendar.
func (hb *HandlerBundle) CreateCalendarBlock(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var input struct {
		LocationID string    `json:"locationId"`
		StartAt    time.Time `json:"startAt"`
		EndAt      time.Time `json:"endAt"`
		Reason     string    `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !input.StartAt.Before(input.EndAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startAt must precede endAt"})
		return
	}

	block := models.CalendarBlock{
		ID:             uuid.New().String(),
		ProfessionalID: actor.ID,
		LocationID:     input.LocationID,
		StartAt:        input.StartAt.UTC(),
		EndAt:          input.EndAt.UTC(),
		Reason:         input.Reason,
	}
	if err := hb.ScheduleRepo.CreateBlock(c.Request.Context(), &block); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create calendar block"})
		return
	}

	c.JSON(http.StatusCreated, block)
}

// DeleteCalendarBlock removes one of the professional's manual blocks.
func (hb *HandlerBundle) DeleteCalendarBlock(c *gin.Context) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := hb.ScheduleRepo.DeleteBlock(c.Request.Context(), c.Param("blockID"), actor.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "calendar block not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
