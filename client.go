package twitter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/net/http2"
)

// Client talks to the direct message endpoints. It keeps no state between
// calls and is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	userAgent  string
	errorCodes ErrorCodes

	httpClient *http.Client
	auth       Authorizer

	logger  zerolog.Logger
	metrics *Metrics
}

// Option customises a Client beyond what Config carries.
type Option func(c *Client)

// WithHTTPClient replaces the client built from Config.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithAuthorizer replaces the credentials built from Config. nil sends
// requests without credentials.
func WithAuthorizer(a Authorizer) Option {
	return func(c *Client) {
		if a == nil {
			a = noAuthorizer{}
		}
		c.auth = a
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a Client. cfg may be nil.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	conf := cfg.withDefaults()

	baseURL, err := url.Parse(conf.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base_url: %w", err)
	}
	if !strings.HasSuffix(baseURL.Path, "/") {
		baseURL.Path += "/"
	}

	c := &Client{
		baseURL:    baseURL,
		userAgent:  conf.UserAgent,
		errorCodes: conf.ErrorCodes,
		auth:       authorizerFromConfig(&conf),
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport, err := newTransport(&conf)
		if err != nil {
			return nil, err
		}

		c.httpClient = &http.Client{
			Transport: transport,
			Timeout:   time.Duration(conf.Timeout),
		}
	}

	return c, nil
}

func newTransport(conf *Config) (*http.Transport, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConnsPerHost:   conf.MaxIdleConnsPerHost,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		IdleConnTimeout:       90 * time.Second,
	}

	if conf.Proxy != "" {
		proxyURL, err := url.Parse(conf.Proxy)
		if err != nil {
			return nil, fmt.Errorf("proxy: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	if conf.HTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("http2: %w", err)
		}
	}

	return transport, nil
}

func (c *Client) newRequest(ctx context.Context, method string, endpoint string, p params) (*http.Request, error) {
	u := c.baseURL.ResolveReference(&url.URL{Path: endpoint})

	var req *http.Request
	var err error
	switch method {
	case http.MethodGet:
		u.RawQuery = p.Encode()
		req, err = http.NewRequestWithContext(ctx, method, u.String(), nil)
	default:
		req, err = http.NewRequestWithContext(ctx, method, u.String(), strings.NewReader(p.Encode()))
	}
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if err := c.auth.Authorize(req); err != nil {
		return nil, fmt.Errorf("authorize %s: %w", endpoint, err)
	}

	return req, nil
}

// do sends one request and decodes a 2xx body into v.
func (c *Client) do(ctx context.Context, method string, endpoint string, p params, v interface{}) error {
	req, err := c.newRequest(ctx, method, endpoint, p)
	if err != nil {
		return err
	}

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("endpoint", endpoint).
		Logger()

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observe(endpoint, method, 0, time.Since(start))
		log.Warn().Err(err).Dur("latency", time.Since(start)).Msg("request failed")
		return err
	}
	defer res.Body.Close()

	buf, err := readBody(res.Body)
	latency := time.Since(start)
	c.metrics.observe(endpoint, method, res.StatusCode, latency)
	if err != nil {
		log.Warn().Err(err).Int("status", res.StatusCode).Msg("read body failed")
		if errors.Is(err, ErrBodyTooLarge) {
			return &ParseError{Endpoint: endpoint, Err: err}
		}
		return err
	}
	defer bytebufferpool.Put(buf)

	log.Debug().
		Int("status", res.StatusCode).
		Int("size", buf.Len()).
		Dur("latency", latency).
		Msg("request completed")

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := newApiError(res.StatusCode, buf.B, c.errorCodes)
		log.Warn().
			Int("status", res.StatusCode).
			Stringer("code", apiErr.Code).
			Str("error_message", apiErr.Message).
			Msg("api error")
		return apiErr
	}

	if err := jsonTwitter.Unmarshal(buf.B, v); err != nil {
		return &ParseError{Endpoint: endpoint, Err: err}
	}

	return nil
}
