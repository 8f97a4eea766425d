package leanix

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateBaseURL(t *testing.T) {
	t.Run("Valid https URL", func(t *testing.T) {
		valid, errors := ValidateBaseURL("https://demo.leanix.net")
		assert.True(t, valid)
		assert.Empty(t, errors)
	})

	t.Run("Valid http URL", func(t *testing.T) {
		valid, _ := ValidateBaseURL("http://localhost:8080")
		assert.True(t, valid)
	})

	t.Run("Rejects other schemes", func(t *testing.T) {
		valid, errors := ValidateBaseURL("ftp://demo.leanix.net")
		assert.False(t, valid)
		assert.Contains(t, errors, "URL must use http or https")
	})

	t.Run("Rejects missing host", func(t *testing.T) {
		valid, errors := ValidateBaseURL("https://")
		assert.False(t, valid)
		assert.Contains(t, errors, "Invalid URL format")
	})

	t.Run("Rejects trailing slash", func(t *testing.T) {
		valid, errors := ValidateBaseURL("https://demo.leanix.net/")
		assert.False(t, valid)
		assert.Contains(t, errors, "URL should not end with a slash")
	})
}

func TestValidateAPIToken(t *testing.T) {
	t.Run("Valid token", func(t *testing.T) {
		valid, errors := ValidateAPIToken("abcdef1234567890")
		assert.True(t, valid)
		assert.Empty(t, errors)
	})

	t.Run("Empty token", func(t *testing.T) {
		valid, errors := ValidateAPIToken("   ")
		assert.False(t, valid)
		assert.Contains(t, errors, "API token cannot be empty")
	})

	t.Run("Too short token", func(t *testing.T) {
		valid, errors := ValidateAPIToken("short")
		assert.False(t, valid)
		assert.Contains(t, errors, "API token appears too short")
	})
}

func TestConfigValidate(t *testing.T) {
	t.Run("Valid config", func(t *testing.T) {
		cfg := Config{
			BaseURL:     "https://demo.leanix.net",
			APIToken:    "abcdef1234567890",
			WorkspaceID: uuid.New(),
		}
		valid, errors := cfg.Validate()
		assert.True(t, valid)
		assert.Empty(t, errors)
	})

	t.Run("Collects URL and token errors together", func(t *testing.T) {
		cfg := Config{BaseURL: "ftp://demo.leanix.net/", APIToken: ""}
		valid, errors := cfg.Validate()
		assert.False(t, valid)
		assert.Contains(t, errors, "URL must use http or https")
		assert.Contains(t, errors, "URL should not end with a slash")
		assert.Contains(t, errors, "API token cannot be empty")
	})
}
