package main

import (
	"log"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/saineshnakra/portfolio/internal/contact"
)

// Config is read from the environment (and .env, when present).
type Config struct {
	Port          string
	DatabasePath  string
	AdminUsername string
	AdminPassword string

	DeliveryProvider string // "emailjs" or "smtp"
	DeliveryTimeout  time.Duration

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSEndpoint   string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	ToEmail  string
}

func loadConfig() Config {
	cfg := Config{
		Port:              getenv("PORT", "8080"),
		DatabasePath:      getenv("DATABASE_PATH", "portfolio.db"),
		AdminUsername:     os.Getenv("ADMIN_USERNAME"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		DeliveryProvider:  getenv("DELIVERY_PROVIDER", "emailjs"),
		DeliveryTimeout:   contact.DefaultTimeout,
		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSEndpoint:   getenv("EMAILJS_ENDPOINT", contact.DefaultEmailJSEndpoint),
		SMTPHost:          getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getenv("SMTP_PORT", "587"),
		SMTPUser:          os.Getenv("SMTP_USER"),
		SMTPPass:          os.Getenv("SMTP_PASS"),
		ToEmail:           os.Getenv("TO_EMAIL"),
	}

	if v := os.Getenv("DELIVERY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("Ignoring DELIVERY_TIMEOUT=%q, using %s", v, cfg.DeliveryTimeout)
		} else {
			cfg.DeliveryTimeout = d
		}
	}
	return cfg
}

// provider builds the configured delivery provider.
func (c Config) provider() contact.Provider {
	if c.DeliveryProvider == "smtp" {
		to := c.ToEmail
		if to == "" {
			to = c.SMTPUser
		}
		return &contact.SMTP{
			Host:     c.SMTPHost,
			Port:     c.SMTPPort,
			User:     c.SMTPUser,
			Password: c.SMTPPass,
			To:       to,
		}
	}
	return &contact.EmailJS{
		ServiceID:  c.EmailJSServiceID,
		TemplateID: c.EmailJSTemplateID,
		PublicKey:  c.EmailJSPublicKey,
		Endpoint:   c.EmailJSEndpoint,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
