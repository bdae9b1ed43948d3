package config

import (
	"fmt"
	"os"
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// AppConfig holds everything read from the environment at startup.
type AppConfig struct {
	Port               string
	BaseURL            string
	RestaurantName     string
	LogoPath           string
	DefaultCountryCode string

	// Email channel (skipped entirely when SMTPHost or SMTPUser is empty)
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// WhatsApp channel via Twilio (skipped when any field is empty)
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioWhatsAppFrom string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the application configuration from environment variables.
func Load() *AppConfig {
	port := getEnv("PORT", "8080")

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		smtpPort = 587
	}

	return &AppConfig{
		Port:               port,
		BaseURL:            getEnv("BASE_URL", "http://localhost:"+port),
		RestaurantName:     getEnv("RESTAURANT_NAME", "XYZ Restaurant"),
		LogoPath:           getEnv("LOGO_PATH", "public/assets/logo.png"),
		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+91"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           smtpPort,
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom: os.Getenv("TWILIO_WHATSAPP_FROM"),
	}
}

// EmailConfigured reports whether the email channel has enough config to run.
func (c *AppConfig) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != ""
}

// WhatsAppConfigured reports whether the Twilio WhatsApp channel is usable.
func (c *AppConfig) WhatsAppConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioWhatsAppFrom != ""
}

// InitDB opens the database connection. MySQL when MYSQL_DSN is set,
// otherwise a local SQLite file (DB_PATH, default billing.db).
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	}

	path := getEnv("DB_PATH", "billing.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	return db, nil
}
