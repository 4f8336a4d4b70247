// Package tbank is a client SDK for the T-Bank acquiring API. It builds
// fiscally validated Init requests, sends them with bearer authentication
// over a pooled transport, and classifies every outcome into a typed result.
package tbank

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/noxlovette/t-bank-sdk/acquiring"
	"github.com/noxlovette/t-bank-sdk/config"
)

// Version is the SDK release, sent in the User-Agent of every request.
const Version = "0.1.0"

const userAgent = "tbank-go-sdk/" + Version

// Service is the gateway service segment of a request URL. Acquiring lives
// at the base root, so its segment is empty.
type Service string

const (
	ServiceAcquiring Service = ""
	ServiceE2C       Service = "e2c"
)

// APIVersion is the version segment of a request URL.
type APIVersion string

const V2 APIVersion = "v2"

// Client talks to one deployment target of the gateway. It is safe for
// concurrent use; the pooled transport is the only state shared between
// in-flight requests.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	token       string
	terminalKey string
	logger      *slog.Logger
}

// New builds a client from resolved configuration. The bearer token and
// terminal key come from the environment collaborator; their acquisition
// and rotation are outside the SDK.
func New(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Token == "" {
		return nil, NewConfigError("token is missing")
	}
	if cfg.TerminalKey == "" || len(cfg.TerminalKey) > 20 {
		return nil, NewConfigError("terminal key must be 1-20 characters, got %d", len(cfg.TerminalKey))
	}

	httpCfg := cfg.HTTP.WithDefaults()
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: httpCfg.ConnectTimeout,
		}).DialContext,
		MaxIdleConnsPerHost: httpCfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     httpCfg.IdleConnTimeout,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   httpCfg.Timeout,
			Transport: transport,
		},
		baseURL:     cfg.BaseURL(),
		token:       cfg.Token,
		terminalKey: cfg.TerminalKey,
		logger:      logger,
	}

	logger.Debug("client constructed",
		"version", Version,
		"base_url", c.baseURL,
		"timeout", httpCfg.Timeout,
		"connect_timeout", httpCfg.ConnectTimeout,
	)
	return c, nil
}

// TerminalKey is the configured merchant terminal identifier.
func (c *Client) TerminalKey() string { return c.terminalKey }

// URL assembles {base}/{service}/{version}/{path} for a gateway endpoint.
func (c *Client) URL(service Service, version APIVersion, path string) string {
	parts := []string{c.baseURL}
	if service != "" {
		parts = append(parts, string(service))
	}
	parts = append(parts, string(version), strings.TrimPrefix(path, "/"))
	return strings.Join(parts, "/")
}

// Init initiates a payment. The request must be sealed; validation never
// reaches the network. A 2xx response with Success=false comes back as a
// KindAPI error carrying the gateway's error code, message and raw body.
func (c *Client) Init(ctx context.Context, req *acquiring.Request) (*acquiring.Response, error) {
	return Send[acquiring.Response](ctx, c, http.MethodPost, c.URL(ServiceAcquiring, V2, "Init"), req)
}
