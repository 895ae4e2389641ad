package handlers

import (
	"net/http"

	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeBookingError maps a service error to an HTTP response. Conflict
// payloads include forcedStep and missing so clients can self-correct.
func writeBookingError(c *gin.Context, err error) {
	be, ok := booking.AsBookingError(err)
	if !ok {
		utils.GetLogger().Error("Unclassified booking error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": be.Message, "code": be.Code}
	if be.Field != "" {
		body["field"] = be.Field
	}
	if be.ForcedStep != models.StepNone {
		body["forcedStep"] = be.ForcedStep
	}
	if len(be.Missing) > 0 {
		body["missing"] = be.Missing
	}

	c.JSON(statusForCode(be.Code), body)
}

func statusForCode(code string) int {
	switch code {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeForbidden:
		return http.StatusForbidden
	case booking.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
