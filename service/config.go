package service

import (
	"fmt"
	"os"
)

type Config struct {
	Environment    string
	Port           string
	FrontendOrigin string

	Stripe struct {
		SecretKey string
		PriceID   string
	}

	Email struct {
		APIKey string
		From   string
	}

	Clerk struct {
		SecretKey string
	}
}

// LoadConfig reads configuration from the environment. Every value the
// server cannot run without must be present, otherwise startup aborts.
func LoadConfig() (*Config, error) {
	config := &Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8000"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
	}

	// Stripe
	config.Stripe.SecretKey = os.Getenv("STRIPE_SECRET_KEY")
	config.Stripe.PriceID = os.Getenv("STRIPE_PRICE_ID")

	// Email
	config.Email.APIKey = os.Getenv("SENDGRID_API_KEY")
	config.Email.From = os.Getenv("EMAIL_FROM")

	// Identity (optional; enables the delete-user routes when set)
	config.Clerk.SecretKey = os.Getenv("CLERK_SECRET_KEY")

	required := []struct {
		name  string
		value string
	}{
		{"FRONTEND_ORIGIN", config.FrontendOrigin},
		{"STRIPE_SECRET_KEY", config.Stripe.SecretKey},
		{"STRIPE_PRICE_ID", config.Stripe.PriceID},
		{"SENDGRID_API_KEY", config.Email.APIKey},
		{"EMAIL_FROM", config.Email.From},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", r.name)
		}
	}

	return config, nil
}

// IdentityEnabled reports whether the Clerk integration is configured.
func (c *Config) IdentityEnabled() bool {
	return c.Clerk.SecretKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
