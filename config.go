package twitter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cast"
)

const (
	DefaultBaseURL             = "https://api.twitter.com/1.1/"
	DefaultUserAgent           = "twitter-dm"
	DefaultTimeout             = 30 * time.Second
	DefaultMaxIdleConnsPerHost = 32
)

// Config describes how a Client reaches the API. It is usually loaded from a
// JSON file with LoadConfig.
type Config struct {
	BaseURL   string `json:"base_url"`
	UserAgent string `json:"user_agent"`

	BearerToken string            `json:"bearer_token"`
	Headers     map[string]string `json:"headers"`

	Proxy               string   `json:"proxy"`
	Timeout             Duration `json:"timeout"`
	MaxIdleConnsPerHost int      `json:"max_idle_conns_per_host"`
	HTTP2               bool     `json:"http2"`

	// ErrorCodes overrides DefaultErrorCodes entry by entry.
	ErrorCodes ErrorCodes `json:"error_codes"`

	SentryDsn string `json:"sentry_dsn"`
}

// Duration accepts "30s" style strings or a number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := jsonTwitter.Unmarshal(b, &v); err != nil {
		return err
	}

	switch n := v.(type) {
	case nil:
		*d = 0
		return nil
	case int64, uint64, float64:
		sec, err := cast.ToFloat64E(n)
		if err != nil {
			return err
		}
		*d = Duration(sec * float64(time.Second))
		return nil
	}

	td, err := cast.ToDurationE(v)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	*d = Duration(td)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return jsonTwitter.Marshal(time.Duration(d).String())
}

// LoadConfig reads a JSON config file and applies environment overrides.
// An empty path only reads the environment.
func LoadConfig(path string) (*Config, error) {
	cfg := new(Config)

	if path != "" {
		fs, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fs.Close()

		err = jsonTwitter.NewDecoder(fs).Decode(cfg)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setString(&cfg.BaseURL, "TWITTER_DM_BASE_URL")
	setString(&cfg.UserAgent, "TWITTER_DM_USER_AGENT")
	setString(&cfg.BearerToken, "TWITTER_DM_BEARER_TOKEN")
	setString(&cfg.Proxy, "TWITTER_DM_PROXY")
	setString(&cfg.SentryDsn, "TWITTER_DM_SENTRY_DSN")

	if v, ok := os.LookupEnv("TWITTER_DM_TIMEOUT"); ok {
		td, err := cast.ToDurationE(v)
		if err != nil {
			return fmt.Errorf("TWITTER_DM_TIMEOUT: %w", err)
		}
		cfg.Timeout = Duration(td)
	}

	if v, ok := os.LookupEnv("TWITTER_DM_HTTP2"); ok {
		b, err := cast.ToBoolE(v)
		if err != nil {
			return fmt.Errorf("TWITTER_DM_HTTP2: %w", err)
		}
		cfg.HTTP2 = b
	}

	return nil
}

func (cfg *Config) withDefaults() Config {
	c := *cfg

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.Timeout == 0 {
		c.Timeout = Duration(DefaultTimeout)
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = DefaultMaxIdleConnsPerHost
	}

	codes := make(ErrorCodes, len(DefaultErrorCodes)+len(c.ErrorCodes))
	for k, v := range DefaultErrorCodes {
		codes[k] = v
	}
	for k, v := range c.ErrorCodes {
		codes[k] = v
	}
	c.ErrorCodes = codes

	return c
}
