package leanix

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Config carries the per-request LeanIX credentials. The caller supplies
// them on every request; nothing is read from the environment.
type Config struct {
	BaseURL     string
	APIToken    string
	WorkspaceID uuid.UUID
}

// ValidateBaseURL checks that a LeanIX instance URL is usable. It returns
// validity plus the collected error messages.
func ValidateBaseURL(rawURL string) (bool, []string) {
	var errors []string
	parsed, err := url.Parse(rawURL)
	if err != nil {
		errors = append(errors, "Invalid URL format")
		return false, errors
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errors = append(errors, "URL must use http or https")
	}
	if parsed.Host == "" {
		errors = append(errors, "Invalid URL format")
	}
	if strings.HasSuffix(rawURL, "/") {
		errors = append(errors, "URL should not end with a slash")
	}
	return len(errors) == 0, errors
}

// ValidateAPIToken checks the token format without calling LeanIX.
func ValidateAPIToken(token string) (bool, []string) {
	var errors []string
	if strings.TrimSpace(token) == "" {
		errors = append(errors, "API token cannot be empty")
	} else if len(token) < 10 {
		errors = append(errors, "API token appears too short")
	}
	return len(errors) == 0, errors
}

// Validate runs every config check and collects all messages.
func (c Config) Validate() (bool, []string) {
	var errors []string
	_, urlErrors := ValidateBaseURL(c.BaseURL)
	errors = append(errors, urlErrors...)

	_, tokenErrors := ValidateAPIToken(c.APIToken)
	errors = append(errors, tokenErrors...)

	return len(errors) == 0, errors
}
