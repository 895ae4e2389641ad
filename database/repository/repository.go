package repository

import (
	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	consultationRepo "glowbook/database/repository/consultation"
	discountRepo "glowbook/database/repository/discount"
	holdRepo "glowbook/database/repository/hold"
	mediaRepo "glowbook/database/repository/media"
	scheduleRepo "glowbook/database/repository/schedule"
)

// Re-export the repository interfaces and constructors.

type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

type HoldRepository = holdRepo.HoldRepository

var NewRedisHoldRepo = holdRepo.NewRedisHoldRepo

type ScheduleRepository = scheduleRepo.ScheduleRepository

var NewMongoScheduleRepo = scheduleRepo.NewMongoScheduleRepo

type ConsultationRepository = consultationRepo.ConsultationRepository

var NewMongoConsultationRepo = consultationRepo.NewMongoConsultationRepo

type DiscountRepository = discountRepo.DiscountRepository

var NewMongoDiscountRepo = discountRepo.NewMongoDiscountRepo

type MediaRepository = mediaRepo.MediaRepository

var NewMongoMediaRepo = mediaRepo.NewMongoMediaRepo

type CatalogRepository = catalogRepo.CatalogRepository

var NewMongoCatalogRepo = catalogRepo.NewMongoCatalogRepo
