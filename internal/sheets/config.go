// Package sheets reads ledger events from Google Sheets spreadsheets.
package sheets

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/project-ledger/internal/common"
)

// maxRetryDelay caps the backoff between Sheets API attempts.
const maxRetryDelay = 30 * time.Second

// Config holds the credentials and retry policy of the Google Sheets reader.
// Exactly one credential source may be set: a service account key, or an
// OAuth2 client with a saved token file or refresh token.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	// TokenFile is where the auth command stores the OAuth2 token.
	TokenFile     string
	RetryAttempts int
	RetryDelay    time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// HasOAuth reports whether OAuth2 client credentials are configured.
func (c *Config) HasOAuth() bool {
	return c.ClientID != "" && c.ClientSecret != "" && (c.RefreshToken != "" || c.TokenFile != "")
}

// HasServiceAccount reports whether a service account key is configured.
func (c *Config) HasServiceAccount() bool {
	return c.ServiceAccountPath != ""
}

// Validate checks that exactly one credential source is configured and that
// the retry policy is sane.
func (c *Config) Validate() error {
	switch {
	case !c.HasOAuth() && !c.HasServiceAccount():
		return fmt.Errorf("%w: no authentication method configured", common.ErrMissingConfig)
	case c.HasOAuth() && c.HasServiceAccount():
		return fmt.Errorf("%w: multiple authentication methods configured; use either OAuth2 or service account", common.ErrInvalidConfig)
	case c.RetryAttempts < 0:
		return fmt.Errorf("%w: retry attempts cannot be negative", common.ErrInvalidConfig)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay cannot be negative", common.ErrInvalidConfig)
	}
	return nil
}

// Retry returns the backoff policy for API calls.
func (c *Config) Retry(logger *slog.Logger) common.RetryOptions {
	return common.RetryOptions{
		Logger:       logger,
		MaxAttempts:  c.RetryAttempts,
		InitialDelay: c.RetryDelay,
		MaxDelay:     maxRetryDelay,
		Multiplier:   common.DefaultMultiplier,
	}
}
