package email

import (
	"fmt"
	"log"

	"nailuxe-notify/pkg/models"
)

// Send24HourReminder sends the day-before reminder email for a booking.
func (s *EmailService) Send24HourReminder(booking models.Booking, to string) error {
	subject := fmt.Sprintf("Tomorrow's Appointment Reminder - %s", s.cfg.BusinessName)
	htmlBody := TwentyFourHourTemplate(booking, s.cfg.BusinessName)

	if err := s.SendEmail(to, subject, htmlBody); err != nil {
		log.Printf("❌ Error sending 24h reminder for booking %s: %v", booking.ID, err)
		return err
	}

	log.Printf("📧 24h reminder sent to %s (booking %s)", to, booking.ID)
	return nil
}

// Send2HourReminder sends the same-day reminder email for a booking.
func (s *EmailService) Send2HourReminder(booking models.Booking, to string) error {
	subject := fmt.Sprintf("Your Appointment is in 2 Hours! - %s", s.cfg.BusinessName)
	htmlBody := TwoHourTemplate(booking, s.cfg.BusinessName)

	if err := s.SendEmail(to, subject, htmlBody); err != nil {
		log.Printf("❌ Error sending 2h reminder for booking %s: %v", booking.ID, err)
		return err
	}

	log.Printf("📧 2h reminder sent to %s (booking %s)", to, booking.ID)
	return nil
}
