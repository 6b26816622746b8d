package main

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/storage/sqlite"
)

func TestNewSubmitter(t *testing.T) {
	t.Run("http", func(t *testing.T) {
		s, err := newSubmitter(config.ContactConfig{
			Transport: config.TransportHTTP,
			Endpoint:  "https://formspree.io/f/test",
			Timeout:   time.Second,
		})
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("smtp without credentials", func(t *testing.T) {
		_, err := newSubmitter(config.ContactConfig{
			Transport: config.TransportSMTP,
			SMTPHost:  "smtp.example.com",
			SMTPPort:  "587",
		})
		assert.Error(t, err)
	})

	t.Run("smtp", func(t *testing.T) {
		s, err := newSubmitter(config.ContactConfig{
			Transport: config.TransportSMTP,
			SMTPHost:  "smtp.example.com",
			SMTPPort:  "587",
			SMTPUser:  "me@example.com",
			SMTPPass:  "pw",
			ToEmail:   "me@example.com",
		})
		require.NoError(t, err)
		assert.NotNil(t, s)
	})
}

func TestContactFactoryRecordsOutcomes(t *testing.T) {
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "portfolio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	m := metrics.New()

	fail := true
	submitter := contact.SubmitterFunc(func(context.Context, contact.Form) error {
		if fail {
			return errors.New("down")
		}
		return nil
	})
	factory := contactFactory(submitter, config.ContactConfig{ResetDelay: time.Hour}, store, m, zap.NewNop())

	ctrl, err := factory()
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)

	ctrl.SetFields(contact.Form{Name: "A", Email: "a@b.com", Message: "hi"})
	require.Error(t, ctrl.Submit(context.Background()))
	fail = false
	require.NoError(t, ctrl.Submit(context.Background()))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ContactTransitions.WithLabelValues("submitting")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactTransitions.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactTransitions.WithLabelValues("success")))

	stats, err := store.Stats(context.Background(), time.Now(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.ContactOutcomes["success"])
	assert.Equal(t, int64(1), stats.ContactOutcomes["error"])
}
