package tbank_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tbank "github.com/noxlovette/t-bank-sdk"
	"github.com/noxlovette/t-bank-sdk/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	t.Run("builds a client from valid configuration", func(t *testing.T) {
		cfg := &config.Config{
			TerminalKey: testTerminalKey,
			Token:       testAuthToken,
		}
		c, err := tbank.New(cfg, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, testTerminalKey, c.TerminalKey())
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		cfg := &config.Config{TerminalKey: testTerminalKey}
		_, err := tbank.New(cfg, discardLogger())
		require.Error(t, err)

		e, ok := tbank.AsError(err)
		require.True(t, ok)
		assert.Equal(t, tbank.KindConfig, e.Kind)
	})

	t.Run("rejects an oversized terminal key", func(t *testing.T) {
		cfg := &config.Config{
			TerminalKey: strings.Repeat("k", 21),
			Token:       testAuthToken,
		}
		_, err := tbank.New(cfg, discardLogger())
		require.Error(t, err)

		e, ok := tbank.AsError(err)
		require.True(t, ok)
		assert.Equal(t, tbank.KindConfig, e.Kind)
	})

	t.Run("nil logger falls back to the default", func(t *testing.T) {
		cfg := &config.Config{
			TerminalKey: testTerminalKey,
			Token:       testAuthToken,
		}
		_, err := tbank.New(cfg, nil)
		assert.NoError(t, err)
	})
}

func TestClientURL(t *testing.T) {
	cfg := &config.Config{
		TerminalKey: testTerminalKey,
		Token:       testAuthToken,
		Endpoint:    "https://gateway.example",
	}
	c, err := tbank.New(cfg, discardLogger())
	require.NoError(t, err)

	t.Run("acquiring endpoints hang off the base root", func(t *testing.T) {
		assert.Equal(t, "https://gateway.example/v2/Init", c.URL(tbank.ServiceAcquiring, tbank.V2, "Init"))
	})

	t.Run("named services get their own segment", func(t *testing.T) {
		assert.Equal(t, "https://gateway.example/e2c/v2/Init", c.URL(tbank.ServiceE2C, tbank.V2, "Init"))
	})

	t.Run("leading slash in the path is tolerated", func(t *testing.T) {
		assert.Equal(t, "https://gateway.example/v2/Init", c.URL(tbank.ServiceAcquiring, tbank.V2, "/Init"))
	})
}
