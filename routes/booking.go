package routes

import (
	"glowbook/handlers"
	"glowbook/middleware"
	"glowbook/models"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.JWTAuthMiddleware())

		booking.GET("/availability", hb.GetDayAvailability)

		// Holds are client-only; ownership is also enforced in the service.
		holds := booking.Group("/holds")
		holds.Use(middleware.RequireRole(models.RoleClient))
		holds.POST("", hb.CreateHold)
		holds.GET("/:holdID", hb.GetHold)
		holds.DELETE("/:holdID", hb.ReleaseHold)

		booking.POST("", middleware.RequireRole(models.RoleClient), hb.CreateBooking)
		booking.PUT("/:bookingID/reschedule", middleware.RequireRole(models.RoleClient), hb.RescheduleBooking)

		booking.POST("/:bookingID/accept", middleware.RequireRole(models.RoleProfessional), hb.AcceptBooking)
		booking.POST("/:bookingID/complete", middleware.RequireRole(models.RoleProfessional), hb.CompleteBooking)
		booking.POST("/:bookingID/cancel", hb.CancelBooking)

		booking.PUT("/:bookingID/step", middleware.RequireRole(models.RoleProfessional), hb.SetSessionStep)

		booking.POST("/:bookingID/consultation/propose", middleware.RequireRole(models.RoleProfessional), hb.ProposeConsultation)
		booking.POST("/:bookingID/consultation/approve", middleware.RequireRole(models.RoleClient), hb.ApproveConsultation)
		booking.POST("/:bookingID/consultation/reject", middleware.RequireRole(models.RoleClient), hb.RejectConsultation)

		booking.GET("/:bookingID/discount", hb.QuoteLastMinuteDiscount)

		booking.POST("/:bookingID/media", middleware.RequireRole(models.RoleProfessional), hb.AttachMediaAsset)
		booking.POST("/:bookingID/aftercare", middleware.RequireRole(models.RoleProfessional), hb.SaveAftercareSummary)
	}
}
