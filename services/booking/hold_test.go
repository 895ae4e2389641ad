package booking

import (
	"context"
	"testing"
	"time"

	"glowbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testClient = models.Actor{ID: "client-1", Role: models.RoleClient}
	testPro    = models.Actor{ID: "pro-1", Role: models.RoleProfessional}
)

func holdFixture(schedules *mockScheduleRepo, catalog *mockCatalogRepo) {
	location := &models.Location{
		ID:             "loc-1",
		ProfessionalID: "pro-1",
		Type:           models.LocationSalon,
		TimeZone:       "America/New_York",
		Active:         true,
	}
	schedules.FindLocationByTypeFn = func(ctx context.Context, professionalID string, t models.LocationType) (*models.Location, error) {
		return location, nil
	}
	schedules.GetScheduleFn = func(ctx context.Context, locationID string) (*models.LocationSchedule, error) {
		return &models.LocationSchedule{LocationID: "loc-1", BufferMinutes: 15, TimeZone: "America/New_York"}, nil
	}
	catalog.offerings["off-1"] = &models.Offering{
		ID:                 "off-1",
		ProfessionalID:     "pro-1",
		ServiceID:          "svc-1",
		Price:              100,
		DurationMinutes:    60,
		MobileExtraMinutes: 30,
	}
}

func TestCreateHold(t *testing.T) {
	req := CreateHoldRequest{
		OfferingID:   "off-1",
		ScheduledFor: testNow.Add(26 * time.Hour),
		LocationType: models.LocationSalon,
	}

	t.Run("pins the slot with the location snapshot", func(t *testing.T) {
		svc, _, holds, schedules, _, _, _, catalog := newTestService()
		holdFixture(schedules, catalog)

		hold, err := svc.CreateHold(context.Background(), testClient, req)
		require.NoError(t, err)

		assert.Equal(t, "client-1", hold.ClientID)
		assert.Equal(t, "pro-1", hold.ProfessionalID)
		assert.Equal(t, "loc-1", hold.LocationID)
		assert.Equal(t, "America/New_York", hold.LocationTimeZone)
		assert.Equal(t, 60, hold.DurationMinutes)
		assert.Equal(t, 15, hold.BufferMinutes)
		assert.Equal(t, testNow.Add(10*time.Minute), hold.ExpiresAt)

		stored, err := holds.Get(context.Background(), hold.ID)
		require.NoError(t, err)
		assert.Equal(t, hold.ID, stored.ID)
	})

	t.Run("mobile appointments include the travel extra", func(t *testing.T) {
		svc, _, _, schedules, _, _, _, catalog := newTestService()
		holdFixture(schedules, catalog)
		schedules.FindLocationByTypeFn = func(ctx context.Context, professionalID string, lt models.LocationType) (*models.Location, error) {
			return &models.Location{ID: "loc-2", ProfessionalID: "pro-1", Type: models.LocationMobile, TimeZone: "America/New_York", Active: true}, nil
		}

		mobile := req
		mobile.LocationType = models.LocationMobile
		hold, err := svc.CreateHold(context.Background(), testClient, mobile)
		require.NoError(t, err)
		assert.Equal(t, 90, hold.DurationMinutes)
	})

	t.Run("professionals cannot hold slots", func(t *testing.T) {
		svc, _, _, schedules, _, _, _, catalog := newTestService()
		holdFixture(schedules, catalog)

		_, err := svc.CreateHold(context.Background(), testPro, req)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeForbidden, be.Code)
	})

	t.Run("rejects a slot in the past", func(t *testing.T) {
		svc, _, _, schedules, _, _, _, catalog := newTestService()
		holdFixture(schedules, catalog)

		past := req
		past.ScheduledFor = testNow.Add(-time.Hour)
		_, err := svc.CreateHold(context.Background(), testClient, past)
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, be.Code)
		assert.Equal(t, "scheduledFor", be.Field)
	})

	t.Run("supersedes the caller's previous hold", func(t *testing.T) {
		svc, _, holds, schedules, _, _, _, catalog := newTestService()
		holdFixture(schedules, catalog)

		first, err := svc.CreateHold(context.Background(), testClient, req)
		require.NoError(t, err)

		second := req
		second.PreviousHoldID = first.ID
		_, err = svc.CreateHold(context.Background(), testClient, second)
		require.NoError(t, err)

		_, err = holds.Get(context.Background(), first.ID)
		assert.Error(t, err)
	})
}

func TestGetHold(t *testing.T) {
	t.Run("another client's hold reads as not found", func(t *testing.T) {
		svc, _, holds, _, _, _, _, _ := newTestService()
		holds.holds["h-1"] = &models.Hold{ID: "h-1", ClientID: "someone-else", ExpiresAt: testNow.Add(time.Hour)}

		_, err := svc.GetHold(context.Background(), testClient, "h-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeNotFound, be.Code)
	})

	t.Run("expired holds are purged on touch", func(t *testing.T) {
		svc, _, holds, _, _, _, _, _ := newTestService()
		holds.holds["h-1"] = &models.Hold{ID: "h-1", ClientID: "client-1", ExpiresAt: testNow.Add(-time.Second)}

		_, err := svc.GetHold(context.Background(), testClient, "h-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeNotFound, be.Code)
		assert.Contains(t, holds.Deleted, "h-1")
	})
}

func TestReleaseHold(t *testing.T) {
	t.Run("releasing an absent hold succeeds", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newTestService()
		assert.NoError(t, svc.ReleaseHold(context.Background(), testClient, "gone"))
	})

	t.Run("releasing a foreign hold reads as not found", func(t *testing.T) {
		svc, _, holds, _, _, _, _, _ := newTestService()
		holds.holds["h-1"] = &models.Hold{ID: "h-1", ClientID: "someone-else", ExpiresAt: testNow.Add(time.Hour)}

		err := svc.ReleaseHold(context.Background(), testClient, "h-1")
		be, ok := AsBookingError(err)
		require.True(t, ok)
		assert.Equal(t, CodeNotFound, be.Code)
	})

	t.Run("releases the caller's hold", func(t *testing.T) {
		svc, _, holds, _, _, _, _, _ := newTestService()
		holds.holds["h-1"] = &models.Hold{ID: "h-1", ClientID: "client-1", ExpiresAt: testNow.Add(time.Hour)}

		require.NoError(t, svc.ReleaseHold(context.Background(), testClient, "h-1"))
		_, err := holds.Get(context.Background(), "h-1")
		assert.Error(t, err)
	})
}
