package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all runtime configuration for the API. Values are read once
// at startup and injected into constructors; nothing reads the environment
// at call time.
type Config struct {
	// Storecove access point
	StorecoveAPIKey  string
	StorecoveBaseURL string

	// Resend email delivery
	ResendAPIKey string
	FromEmail    string
	FromName     string

	// Country used for tax subtotals and e-identifier schemes when the
	// receiving party has no country set.
	DefaultTaxCountry string

	// Optional secondary recipient that gets a copy of every invoice email.
	AccountingCopyEmail string

	// Maximum size of a fetched terms-and-conditions attachment. Larger
	// documents are skipped, not attached.
	MaxAttachmentBytes int64

	// Timeout applied to every outbound HTTP call.
	ExternalCallTimeout time.Duration

	DatabaseURL string
	Port        string
}

const (
	defaultBaseURL            = "https://api.storecove.com/api/v2"
	defaultTaxCountry         = "BE"
	defaultMaxAttachmentBytes = 10 * 1024 * 1024
	defaultTimeout            = 30 * time.Second
	defaultPort               = "8000"
)

// Load builds a Config from the environment. The two API credentials are
// required; everything else has a sensible default.
func Load() (*Config, error) {
	cfg := &Config{
		StorecoveAPIKey:     os.Getenv("STORECOVE_API_KEY"),
		StorecoveBaseURL:    getEnv("STORECOVE_BASE_URL", defaultBaseURL),
		ResendAPIKey:        os.Getenv("RESEND_API_KEY"),
		FromEmail:           getEnv("FROM_EMAIL", "invoices@facturo.app"),
		FromName:            getEnv("FROM_NAME", "Facturo"),
		DefaultTaxCountry:   getEnv("PEPPOL_DEFAULT_COUNTRY", defaultTaxCountry),
		AccountingCopyEmail: os.Getenv("ACCOUNTING_COPY_EMAIL"),
		MaxAttachmentBytes:  defaultMaxAttachmentBytes,
		ExternalCallTimeout: defaultTimeout,
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		Port:                getEnv("API_PORT", defaultPort),
	}

	if cfg.StorecoveAPIKey == "" {
		return nil, fmt.Errorf("STORECOVE_API_KEY environment variable is required")
	}
	if cfg.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
