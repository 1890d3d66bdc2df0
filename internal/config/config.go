package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Reminder scanner
	TimeZone            string
	ScanIntervalMinutes int

	// Firebase
	FirebaseCredentialsPath string

	// Delivery log (optional)
	DatabaseURL string

	// Business identity used in notifications
	BusinessName string

	// SMTP Configuration
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  Info: no .env file found, reading environment variables from the system.")
	}

	return &Config{
		// Server
		Port:        getEnvWithDefault("PORT", "8080"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),

		// Reminder scanner
		TimeZone:            getEnvWithDefault("TIMEZONE", "America/Jamaica"),
		ScanIntervalMinutes: getEnvInt("SCAN_INTERVAL_MINUTES", 60),

		// Firebase
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),

		// Delivery log
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// Business
		BusinessName: getEnvWithDefault("BUSINESS_NAME", "NAILUXE NAILZ BY NAVIA"),

		// SMTP
		SMTPHost:      getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnvWithDefault("SMTP_FROM_NAME", "NAILUXE NAILZ BY NAVIA"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	if c.FirebaseCredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.ScanIntervalMinutes <= 0 {
		return fmt.Errorf("SCAN_INTERVAL_MINUTES must be positive")
	}

	if c.SMTPUsername == "" || c.SMTPPassword == "" {
		log.Println("⚠️  SMTP credentials not configured, reminder emails will fail to send")
	}

	if c.DatabaseURL == "" {
		log.Println("ℹ️  DATABASE_URL not set, delivery log disabled")
	}

	return nil
}
