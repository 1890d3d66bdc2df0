package email

import (
	"fmt"
	"time"

	"nailuxe-notify/pkg/models"
)

const salonLocationHTML = `Shop #4, 1 Wesley road cheago plaza<br>
              Angellace beauty salon<br>
              Mandeville, Jamaica`

// TwentyFourHourTemplate generates the HTML body for the day-before reminder.
func TwentyFourHourTemplate(booking models.Booking, businessName string) string {
	formattedDate := formatLongDate(booking.Date)

	serviceRow := ""
	if booking.Service != "" {
		serviceRow = fmt.Sprintf(`<p style="margin: 8px 0; font-size: 15px;"><strong>Service:</strong> %s</p>`, booking.Service)
	}

	return fmt.Sprintf(`
      <div style="font-family: 'Arial', sans-serif; max-width: 600px; margin: 0 auto; background: #f9f9f9; padding: 20px;">

        <!-- Header -->
        <div style="background: linear-gradient(90deg, #FE5DC7, #61134A); padding: 25px; text-align: center; border-radius: 12px 12px 0 0;">
          <h1 style="color: white; margin: 0; font-size: 28px; font-weight: bold;">%s</h1>
          <p style="color: white; margin: 8px 0 0 0; font-size: 16px;">Appointment Reminder</p>
        </div>

        <!-- Content -->
        <div style="background: white; padding: 30px; border-radius: 0 0 12px 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">

          <h2 style="color: #61134A; margin: 0 0 20px 0;">Hi %s!</h2>

          <p style="font-size: 16px; line-height: 1.6; color: #333; margin-bottom: 25px;">
            Just a friendly reminder that your nail appointment is scheduled for <strong>tomorrow</strong>.
          </p>

          <!-- Appointment Details Box -->
          <div style="background: #f8f9ff; border-left: 4px solid #FE5DC7; padding: 20px; margin: 25px 0; border-radius: 0 8px 8px 0;">
            <h3 style="margin: 0 0 15px 0; color: #61134A; font-size: 18px;">Appointment Details</h3>
            <p style="margin: 8px 0; font-size: 15px;"><strong>Date:</strong> %s</p>
            <p style="margin: 8px 0; font-size: 15px;"><strong>Time:</strong> %s</p>
            <p style="margin: 8px 0; font-size: 15px;"><strong>Booking #:</strong> %s</p>
            %s
          </div>

          <!-- Location -->
          <div style="background: #e8f5e8; padding: 20px; border-radius: 8px; margin: 25px 0;">
            <h4 style="margin: 0 0 12px 0; color: #2e7d32; font-size: 16px;">Location</h4>
            <p style="margin: 0; font-size: 14px; line-height: 1.5; color: #333;">
              %s
            </p>
          </div>

          <!-- Payment Reminder -->
          <div style="background: #fff3e0; padding: 15px; border-radius: 8px; margin: 20px 0;">
            <p style="margin: 0; font-size: 14px; color: #e65100;">
              <strong>Payment Reminder:</strong> Please use booking # <strong>%s</strong> as your payment reference.
            </p>
          </div>

          <hr style="border: 0; height: 1px; background: #eee; margin: 25px 0;">

          <p style="text-align: center; color: #666; font-size: 14px; margin: 0;">
            Looking forward to seeing you!<br>
            <em>%s Team</em>
          </p>
        </div>
      </div>
    `, businessName, booking.Name, formattedDate, booking.Time, booking.BookingNumber, serviceRow, salonLocationHTML, booking.BookingNumber, businessName)
}

// TwoHourTemplate generates the HTML body for the same-day reminder.
func TwoHourTemplate(booking models.Booking, businessName string) string {
	return fmt.Sprintf(`
      <div style="font-family: 'Arial', sans-serif; max-width: 600px; margin: 0 auto; background: #f9f9f9; padding: 20px;">

        <!-- Header -->
        <div style="background: linear-gradient(90deg, #FF6B6B, #FE5DC7); padding: 25px; text-align: center; border-radius: 12px 12px 0 0;">
          <h1 style="color: white; margin: 0; font-size: 28px; font-weight: bold;">%s</h1>
          <p style="color: white; margin: 8px 0 0 0; font-size: 18px; font-weight: bold;">Appointment Starting Soon!</p>
        </div>

        <!-- Content -->
        <div style="background: white; padding: 30px; border-radius: 0 0 12px 12px; box-shadow: 0 4px 12px rgba(0,0,0,0.1);">

          <h2 style="color: #61134A; margin: 0 0 20px 0;">Hi %s!</h2>

          <!-- Urgent Notice -->
          <div style="background: #fff3cd; border: 2px solid #ffc107; padding: 20px; border-radius: 8px; text-align: center; margin: 20px 0;">
            <h3 style="margin: 0; color: #856404; font-size: 20px;">Your appointment starts in about 2 hours!</h3>
          </div>

          <!-- Quick Details -->
          <div style="background: #f8f9ff; border-left: 4px solid #FE5DC7; padding: 20px; margin: 25px 0; border-radius: 0 8px 8px 0;">
            <h3 style="margin: 0 0 15px 0; color: #61134A; font-size: 18px;">Quick Details</h3>
            <p style="margin: 8px 0; font-size: 15px;"><strong>Today at:</strong> %s</p>
            <p style="margin: 8px 0; font-size: 15px;"><strong>Booking #:</strong> %s</p>
          </div>

          <!-- Getting Ready Tips -->
          <div style="background: #e3f2fd; padding: 20px; border-radius: 8px; margin: 25px 0;">
            <h4 style="margin: 0 0 15px 0; color: #1565c0; font-size: 16px;">Getting Ready Tips</h4>
            <ul style="margin: 0; padding-left: 20px; font-size: 14px; line-height: 1.6;">
              <li>Remove any existing nail polish</li>
              <li>Arrive 5 minutes early</li>
              <li>Bring flip-flops if getting a pedicure</li>
            </ul>
          </div>

          <!-- Location -->
          <div style="background: #e8f5e8; padding: 20px; border-radius: 8px; margin: 25px 0;">
            <h4 style="margin: 0 0 12px 0; color: #2e7d32; font-size: 16px;">Location</h4>
            <p style="margin: 0; font-size: 14px; line-height: 1.5; color: #333;">
              %s
            </p>
          </div>

          <hr style="border: 0; height: 1px; background: #eee; margin: 25px 0;">

          <p style="text-align: center; color: #666; font-size: 14px; margin: 0;">
            See you soon!<br>
            <em>%s Team</em>
          </p>
        </div>
      </div>
    `, businessName, booking.Name, booking.Time, booking.BookingNumber, salonLocationHTML, businessName)
}

// formatLongDate renders a YYYY-MM-DD booking date like
// "Monday, January 2, 2006". Falls back to the raw string if it fails to parse.
func formatLongDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
