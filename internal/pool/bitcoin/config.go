package bitcoin

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/btcsuite/btcd/rpcclient"
	"go.uber.org/ratelimit"
)

// Config holds node connection settings. It is built once at startup and passed in.
type Config struct {
	URL               string
	User              string
	Password          string
	RequestsPerSecond int
}

// ConnConfig validates c and maps it onto a btcd HTTP POST connection config.
func (c Config) ConnConfig() (*rpcclient.ConnConfig, error) {
	parsed, err := url.Parse(c.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http or https", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         c.User,
		Pass:         c.Password,
		HTTPPostMode: true,
		DisableTLS:   parsed.Scheme == "http",
	}, nil
}

// Limiter paces node calls. Zero or negative RequestsPerSecond means unlimited.
func (c Config) Limiter() ratelimit.Limiter {
	if c.RequestsPerSecond <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(c.RequestsPerSecond)
}

// NewNodeClient opens a btcd client in HTTP POST mode with basic auth.
func NewNodeClient(cfg Config) (*rpcclient.Client, error) {
	connCfg, err := cfg.ConnConfig()
	if err != nil {
		return nil, err
	}
	client, err := rpcclient.New(connCfg, nil)
	if err != nil {
		return nil, fmt.Errorf("create rpc client: %w", err)
	}
	return client, nil
}
