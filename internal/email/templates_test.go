package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"nailuxe-notify/pkg/models"
)

const business = "NAILUXE NAILZ BY NAVIA"

func sampleBooking() models.Booking {
	return models.Booking{
		ID:            "b1",
		Name:          "Amelia",
		Date:          "2026-03-10",
		Time:          "1:30 PM",
		Service:       "Gel Manicure",
		BookingNumber: "BN-104",
	}
}

func TestTwentyFourHourTemplate(t *testing.T) {
	html := TwentyFourHourTemplate(sampleBooking(), business)

	assert.Contains(t, html, "Hi Amelia!")
	assert.Contains(t, html, "Tuesday, March 10, 2026")
	assert.Contains(t, html, "1:30 PM")
	assert.Contains(t, html, "BN-104")
	assert.Contains(t, html, "Gel Manicure")
	assert.Contains(t, html, business)
	assert.Contains(t, html, "Mandeville, Jamaica")
}

func TestTwentyFourHourTemplate_OmitsEmptyService(t *testing.T) {
	b := sampleBooking()
	b.Service = ""

	html := TwentyFourHourTemplate(b, business)
	assert.NotContains(t, html, "Service:")
}

func TestTwoHourTemplate(t *testing.T) {
	html := TwoHourTemplate(sampleBooking(), business)

	assert.Contains(t, html, "Hi Amelia!")
	assert.Contains(t, html, "about 2 hours")
	assert.Contains(t, html, "1:30 PM")
	assert.Contains(t, html, "BN-104")
	assert.Contains(t, html, business)
}

func TestFormatLongDate_FallsBackOnBadInput(t *testing.T) {
	assert.Equal(t, "not-a-date", formatLongDate("not-a-date"))
	assert.True(t, strings.HasPrefix(formatLongDate("2026-03-10"), "Tuesday"))
}
