package booking

import (
	"context"
	"fmt"
	"time"

	"glowbook/models"
	"glowbook/services/tasks"
	"glowbook/utils"

	"go.uber.org/zap"
)

// slotConflicts scans the professional's non-cancelled bookings in a ±24h
// window around start and reports whether any overlaps [start, start+span).
func (s *DefaultBookingService) slotConflicts(ctx context.Context, professionalID string, start time.Time, durationMinutes, bufferMinutes int, excludeBookingID string) (bool, error) {
	end := start.Add(time.Duration(durationMinutes+bufferMinutes) * time.Minute)
	others, err := s.Bookings.ListActiveForProfessional(ctx, professionalID, start.Add(-24*time.Hour), start.Add(24*time.Hour))
	if err != nil {
		return false, fmt.Errorf("conflict scan failed: %w", err)
	}
	for i := range others {
		if others[i].ID == excludeBookingID {
			continue
		}
		if others[i].Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

// notifyBoth delivers a templated message to both parties. Delivery is a
// non-critical side effect: failures come back as warnings, never as errors.
func (s *DefaultBookingService) notifyBoth(ctx context.Context, b *models.Booking, template string) []string {
	if s.Notifier == nil {
		return nil
	}
	var warnings []string
	data := map[string]string{
		"bookingId":    b.ID,
		"scheduledFor": b.ScheduledFor.Format(time.RFC3339),
	}
	if err := s.Notifier.SendClientMessage(ctx, b.ClientID, template, data); err != nil {
		warnings = append(warnings, fmt.Sprintf("client notification failed: %v", err))
	}
	if err := s.Notifier.SendProfessionalMessage(ctx, b.ProfessionalID, template, data); err != nil {
		warnings = append(warnings, fmt.Sprintf("professional notification failed: %v", err))
	}
	return warnings
}

// scheduleReminder enqueues the appointment reminder task. Like notification
// delivery this may fail independently of the primary operation.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) []string {
	if s.Reminders == nil {
		return nil
	}
	lead := s.ReminderLeadMinutes
	if lead <= 0 {
		lead = 120
	}
	fireAt := b.ScheduledFor.Add(-time.Duration(lead) * time.Minute)
	if fireAt.Before(s.now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: b.ID,
		Target:    "client",
		TargetID:  b.ClientID,
		Title:     "Upcoming appointment",
		Body:      "Your appointment is coming up soon.",
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return []string{fmt.Sprintf("reminder task build failed: %v", err)}
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("failed to enqueue reminder",
			zap.String("bookingID", b.ID), zap.Error(err))
		return []string{fmt.Sprintf("reminder enqueue failed: %v", err)}
	}
	return nil
}
