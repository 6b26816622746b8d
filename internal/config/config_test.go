package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/theme"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, TransportHTTP, cfg.Contact.Transport)
	assert.Equal(t, 3*time.Second, cfg.Contact.ResetDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, theme.Light, cfg.DefaultThemeValue())
	assert.False(t, cfg.Admin.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("PORTFOLIO_DEFAULT_THEME", "dark")
	t.Setenv("CONTACT_TIMEOUT", "2s")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, theme.Dark, cfg.DefaultThemeValue())
	assert.Equal(t, 2*time.Second, cfg.Contact.Timeout)
	assert.True(t, cfg.Admin.Enabled())
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	t.Run("unknown theme", func(t *testing.T) {
		t.Setenv("PORTFOLIO_DEFAULT_THEME", "sepia")
		_, err := Load()
		assert.ErrorContains(t, err, "PORTFOLIO_DEFAULT_THEME")
	})

	t.Run("smtp needs credentials", func(t *testing.T) {
		t.Setenv("CONTACT_TRANSPORT", TransportSMTP)
		_, err := Load()
		assert.ErrorContains(t, err, "SMTP_USER")
	})

	t.Run("smtp with credentials", func(t *testing.T) {
		t.Setenv("CONTACT_TRANSPORT", TransportSMTP)
		t.Setenv("SMTP_USER", "u")
		t.Setenv("SMTP_PASS", "p")
		t.Setenv("TO_EMAIL", "me@example.com")
		_, err := Load()
		assert.NoError(t, err)
	})

	t.Run("unknown transport", func(t *testing.T) {
		t.Setenv("CONTACT_TRANSPORT", "pigeon")
		_, err := Load()
		assert.ErrorContains(t, err, "CONTACT_TRANSPORT")
	})

	t.Run("bad log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		assert.ErrorContains(t, err, "LOG_FORMAT")
	})
}
