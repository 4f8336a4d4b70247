package tbank_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tbank "github.com/noxlovette/t-bank-sdk"
	"github.com/noxlovette/t-bank-sdk/acquiring"
	"github.com/noxlovette/t-bank-sdk/config"
)

const (
	testTerminalKey = "TBankTest"
	testAuthToken   = "68711168852240a2f34b6a8b19d2cfbd296c7d2a6dff8b23eda6278985959346"
)

func newTestClient(t *testing.T, endpoint string, httpCfg config.HTTPConfig) *tbank.Client {
	t.Helper()
	cfg := &config.Config{
		TerminalKey: testTerminalKey,
		Token:       testAuthToken,
		Endpoint:    endpoint,
		HTTP:        httpCfg,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := tbank.New(cfg, logger)
	require.NoError(t, err)
	return c
}

func sealedRequest(t *testing.T) *acquiring.Request {
	t.Helper()
	req, err := acquiring.NewRequest(testTerminalKey, 140000, "21090", testAuthToken).
		WithDescription("Подарочная карта на 1000 рублей").
		Seal()
	require.NoError(t, err)
	return req
}

func TestInitSuccess(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		capturedBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"Success":true,"ErrorCode":"0","TerminalKey":"TBankTest","Status":"NEW","PaymentId":"3093639567","OrderId":"21090","Amount":140000,"PaymentURL":"https://pay.tbank.ru/new/fU1ppgqa"}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, config.DefaultHTTP)
	resp, err := c.Init(context.Background(), sealedRequest(t))
	require.NoError(t, err)

	assert.Equal(t, "NEW", resp.Status)
	assert.Equal(t, "3093639567", resp.PaymentID)
	assert.Equal(t, "https://pay.tbank.ru/new/fU1ppgqa", resp.PaymentURL)

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/v2/Init", captured.URL.Path)
	assert.Equal(t, "Bearer "+testAuthToken, captured.Header.Get("Authorization"))
	assert.Equal(t, "application/json", captured.Header.Get("Content-Type"))
	assert.Contains(t, captured.Header.Get("User-Agent"), "tbank-go-sdk/")
	assert.Contains(t, string(capturedBody), `"TerminalKey":"TBankTest"`)
	assert.Contains(t, string(capturedBody), `"Amount":140000`)
}

func TestSendStatusClassification(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		wantKind  tbank.Kind
		retryable bool
		keepsBody bool
	}{
		{"unauthorized", http.StatusUnauthorized, tbank.KindUnauthorized, false, false},
		{"forbidden", http.StatusForbidden, tbank.KindForbidden, false, false},
		{"not found", http.StatusNotFound, tbank.KindNotFound, false, false},
		{"rate limited", http.StatusTooManyRequests, tbank.KindRateLimited, true, false},
		{"internal error", http.StatusInternalServerError, tbank.KindServer, true, true},
		{"bad gateway", http.StatusBadGateway, tbank.KindServer, true, true},
		{"teapot", http.StatusTeapot, tbank.KindAPI, false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				io.WriteString(w, `{"detail":"broken"}`)
			}))
			defer srv.Close()

			c := newTestClient(t, srv.URL, config.DefaultHTTP)
			_, err := c.Init(context.Background(), sealedRequest(t))
			require.Error(t, err)

			e, ok := tbank.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantKind, e.Kind)
			assert.Equal(t, tc.retryable, e.Retryable())
			if tc.keepsBody {
				assert.Equal(t, `{"detail":"broken"}`, e.Body)
			}
		})
	}
}

func TestSendBusinessRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"Success":false,"ErrorCode":"204","Message":"Неверный статус договора.","Details":"Обратитесь в банк."}`)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, config.DefaultHTTP)
	_, err := c.Init(context.Background(), sealedRequest(t))
	require.Error(t, err)

	e, ok := tbank.AsError(err)
	require.True(t, ok)
	assert.Equal(t, tbank.KindAPI, e.Kind)
	assert.Equal(t, "204", e.Code)
	assert.Contains(t, e.Message, "Неверный статус договора.")
	assert.Contains(t, e.Message, "Обратитесь в банк.")
	assert.Contains(t, e.Body, `"ErrorCode":"204"`)
	assert.False(t, e.Retryable())
}

func TestSendDeserialize(t *testing.T) {
	t.Run("wrong type names the failing field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"Success":true,"ErrorCode":"0","PaymentId":3093639567}`)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL, config.DefaultHTTP)
		_, err := c.Init(context.Background(), sealedRequest(t))
		require.Error(t, err)

		e, ok := tbank.AsError(err)
		require.True(t, ok)
		assert.Equal(t, tbank.KindDeserialize, e.Kind)
		assert.Equal(t, "PaymentId", e.Path)
		assert.Contains(t, e.Body, `"PaymentId":3093639567`)
	})

	t.Run("malformed JSON reports the offset", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"Success":true,`)
		}))
		defer srv.Close()

		c := newTestClient(t, srv.URL, config.DefaultHTTP)
		_, err := c.Init(context.Background(), sealedRequest(t))
		require.Error(t, err)

		e, ok := tbank.AsError(err)
		require.True(t, ok)
		assert.Equal(t, tbank.KindDeserialize, e.Kind)
		assert.Contains(t, e.Path, "offset")
	})
}

func TestSendTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		io.WriteString(w, `{"Success":true,"ErrorCode":"0"}`)
	}))
	defer srv.Close()

	httpCfg := config.DefaultHTTP
	httpCfg.Timeout = 50 * time.Millisecond
	c := newTestClient(t, srv.URL, httpCfg)

	_, err := c.Init(context.Background(), sealedRequest(t))
	require.Error(t, err)

	e, ok := tbank.AsError(err)
	require.True(t, ok)
	assert.Equal(t, tbank.KindTimeout, e.Kind)
	assert.True(t, e.Retryable())
}

func TestSendNetwork(t *testing.T) {
	// Closing the server before the call guarantees a refused connection,
	// which must classify as a network failure rather than a timeout.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	c := newTestClient(t, endpoint, config.DefaultHTTP)
	_, err := c.Init(context.Background(), sealedRequest(t))
	require.Error(t, err)

	e, ok := tbank.AsError(err)
	require.True(t, ok)
	assert.Equal(t, tbank.KindNetwork, e.Kind)
	assert.True(t, e.Retryable())
}

func TestSendContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, config.DefaultHTTP)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.Init(ctx, sealedRequest(t))
	require.Error(t, err)

	e, ok := tbank.AsError(err)
	require.True(t, ok)
	assert.Equal(t, tbank.KindTimeout, e.Kind)
}
