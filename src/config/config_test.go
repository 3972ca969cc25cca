package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the duration of the test; t.Setenv
// registers the restore, os.Unsetenv removes the empty value it set.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "SESSION_SECRET", "LOG_LEVEL", "LOG_FORMAT",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
		"MAILGUN_DOMAIN", "MAILGUN_API_KEY", "NOTIFY_TIMEOUT",
		"CONTENT_FILE", "PUBLIC_DIR", "RESUME_PATH",
	} {
		unsetenv(t, key)
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "portfolio123", cfg.AdminPassword)
	assert.Empty(t, cfg.MailgunAPIKey)
	assert.Equal(t, 10, cfg.NotifyTimeout)
	assert.Equal(t, "content.yaml", cfg.ContentFile)
	assert.Equal(t, "public/assets/resume.pdf", cfg.ResumePath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ADMIN_USERNAME", "sriram")
	t.Setenv("MAILGUN_DOMAIN", "mg.example.com")
	t.Setenv("NOTIFY_TIMEOUT", "30")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sriram", cfg.AdminUsername)
	assert.Equal(t, "mg.example.com", cfg.MailgunDomain)
	assert.Equal(t, 30, cfg.NotifyTimeout)
}

func TestNotifyTimeoutInvalidFallsBack(t *testing.T) {
	for name, value := range map[string]string{
		"not a number": "not-a-number",
		"zero":         "0",
		"negative":     "-5",
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NOTIFY_TIMEOUT", value)

			cfg := Load()

			assert.Equal(t, 10, cfg.NotifyTimeout)
		})
	}
}

func TestSessionSecretGenerated(t *testing.T) {
	unsetenv(t, "SESSION_SECRET")

	first := Load()
	second := Load()

	require.Len(t, first.SessionSecret, 32)
	assert.NotEqual(t, first.SessionSecret, second.SessionSecret)
}
