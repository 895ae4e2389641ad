package booking

import (
	"context"
	"testing"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutFixture(holds *mockHoldRepo, catalog *mockCatalogRepo, scheduledFor time.Time) *models.Hold {
	catalog.offerings["off-1"] = &models.Offering{
		ID:              "off-1",
		ProfessionalID:  "pro-1",
		ServiceID:       "svc-1",
		Price:           100,
		DurationMinutes: 60,
	}
	hold := &models.Hold{
		ID:               "h-1",
		ClientID:         "client-1",
		ProfessionalID:   "pro-1",
		ServiceID:        "svc-1",
		OfferingID:       "off-1",
		LocationID:       "loc-1",
		LocationType:     models.LocationSalon,
		LocationTimeZone: "America/New_York",
		ScheduledFor:     scheduledFor,
		DurationMinutes:  60,
		BufferMinutes:    15,
		ExpiresAt:        testNow.Add(10 * time.Minute),
		CreatedAt:        testNow,
	}
	holds.holds[hold.ID] = hold
	return hold
}

func TestCreateBooking(t *testing.T) {
	req := CreateBookingRequest{HoldID: "h-1", OfferingID: "off-1"}

	t.Run("realizes the hold into a pending booking", func(t *testing.T) {
		svc, bookings, holds, _, _, _, _, catalog := newTestService()
		checkoutFixture(holds, catalog, testNow.Add(48*time.Hour))

		result, err := svc.CreateBooking(context.Background(), testClient, req)
		require.NoError(t, err)

		b := result.Booking
		assert.Equal(t, models.StatusPending, b.Status)
		assert.Equal(t, models.StepNone, b.SessionStep)
		assert.Equal(t, "pro-1", b.ProfessionalID)
		assert.Equal(t, "client-1", b.ClientID)
		assert.Equal(t, "America/New_York", b.LocationTimeZone)
		assert.Equal(t, 60, b.TotalDurationMinutes)
		assert.Equal(t, 15, b.BufferMinutes)
		assert.Equal(t, 100.0, b.SubtotalSnapshot)
		assert.Equal(t, 0.0, b.DiscountAmount)
		assert.Equal(t, 100.0, b.TotalAmount)

		require.Len(t, bookings.Created, 1)
		// The hold is consumed only after the commit.
		assert.Contains(t, holds.Deleted, "h-1")
	})

	t.Run("applies the same-day discount at checkout", func(t *testing.T) {
		svc, _, holds, _, _, discounts, _, catalog := newTestService()
		// 20:00 UTC is 16:00 in New York, same local day as the 08:00 clock.
		checkoutFixture(holds, catalog, testNow.Add(8*time.Hour))
		discounts.settings["pro-1"] = &models.LastMinuteSettings{
			ProfessionalID: "pro-1",
			Enabled:        true,
			Rules:          []models.LastMinuteRule{{Window: models.WindowSameDay, Percent: 20}},
		}

		result, err := svc.CreateBooking(context.Background(), testClient, req)
		require.NoError(t, err)
		assert.Equal(t, 20.0, result.Booking.DiscountAmount)
		assert.Equal(t, 80.0, result.Booking.TotalAmount)
	})

	t.Run("application-level conflict check rejects a taken slot", func(t *testing.T) {
		svc, bookings, holds, _, _, _, _, catalog := newTestService()
		hold := checkoutFixture(holds, catalog, testNow.Add(48*time.Hour))

		bookings.ListActiveFn = func(ctx context.Context, professionalID string, from, to time.Time) ([]models.Booking, error) {
			return []models.Booking{{
				ID:                   "other",
				ScheduledFor:         hold.ScheduledFor,
				TotalDurationMinutes: 30,
			}}, nil
		}

		_, err := svc.CreateBooking(context.Background(), testClient, req)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
		// The hold survives a failed checkout.
		_, err = holds.Get(context.Background(), "h-1")
		assert.NoError(t, err)
	})

	t.Run("unique index race maps to conflict", func(t *testing.T) {
		svc, bookings, holds, _, _, _, _, catalog := newTestService()
		checkoutFixture(holds, catalog, testNow.Add(48*time.Hour))

		bookings.CreateFn = func(ctx context.Context, b *models.Booking) error {
			return bookingRepo.ErrSlotTaken
		}

		_, err := svc.CreateBooking(context.Background(), testClient, req)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("rejects an offering mismatch against the hold", func(t *testing.T) {
		svc, _, holds, _, _, _, _, catalog := newTestService()
		checkoutFixture(holds, catalog, testNow.Add(48*time.Hour))

		mismatched := req
		mismatched.OfferingID = "off-other"
		_, err := svc.CreateBooking(context.Background(), testClient, mismatched)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeConflict, be.Code)
	})

	t.Run("an expired hold cannot be realized", func(t *testing.T) {
		svc, _, holds, _, _, _, _, catalog := newTestService()
		hold := checkoutFixture(holds, catalog, testNow.Add(48*time.Hour))
		hold.ExpiresAt = testNow.Add(-time.Second)

		_, err := svc.CreateBooking(context.Background(), testClient, req)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeNotFound, be.Code)
	})
}
