package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Auth settings
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// Stripe settings. Leaving the secret key empty disables the payment
	// routes (they answer 503) instead of failing at boot.
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`

	// SendGrid settings for the contact form notification email.
	SendGridAPIKey   string `envconfig:"SENDGRID_API_KEY"`
	ContactFromEmail string `envconfig:"CONTACT_FROM_EMAIL"`
	ContactToEmail   string `envconfig:"CONTACT_TO_EMAIL"`

	// Object storage settings. Leaving the URL empty disables the object
	// routes the same way the Stripe key does.
	S3URL       string `envconfig:"S3_URL"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`
	S3AccessKey string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey string `envconfig:"S3_SECRET_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
