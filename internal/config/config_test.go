package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "America/Jamaica", cfg.TimeZone)
	assert.Equal(t, 60, cfg.ScanIntervalMinutes)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, "NAILUXE NAILZ BY NAVIA", cfg.BusinessName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TIMEZONE", "America/New_York")
	t.Setenv("SCAN_INTERVAL_MINUTES", "15")
	t.Setenv("SMTP_PORT", "465")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "America/New_York", cfg.TimeZone)
	assert.Equal(t, 15, cfg.ScanIntervalMinutes)
	assert.Equal(t, 465, cfg.SMTPPort)
}

func TestLoad_BadIntFallsBackToDefault(t *testing.T) {
	t.Setenv("SCAN_INTERVAL_MINUTES", "hourly")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.ScanIntervalMinutes)
}

func TestValidate_RequiresFirebaseCredentials(t *testing.T) {
	cfg := &Config{ScanIntervalMinutes: 60}
	assert.Error(t, cfg.Validate())

	cfg.FirebaseCredentialsPath = "/etc/salon/firebase.json"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveInterval(t *testing.T) {
	cfg := &Config{
		FirebaseCredentialsPath: "/etc/salon/firebase.json",
		ScanIntervalMinutes:     0,
	}
	assert.Error(t, cfg.Validate())
}
