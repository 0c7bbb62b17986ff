package config

import (
	"errors"
	"strings"
	"time"
)

const (
	defaultClientBaseURL     = "http://localhost:8080"
	defaultClientTimeout     = 30 * time.Second
	defaultClientSessionFile = "session.json"
)

// ErrNoBaseURL is returned when the client cannot resolve a server address
// from any configuration source.
var ErrNoBaseURL = errors.New("no server address provided for the client")

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the HTTP endpoint of the note-keeper server.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local persistence settings for the client.
type ClientStorage struct {
	// SessionFile is the path where the client keeps its saved login
	// session between runs.
	SessionFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeouts.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from
// the merged configuration sources.
//
// The client shares the server's sources (env, flags, JSON) but not its
// invariants: it never needs the token signing key, so the merge is taken
// without the server-side validation pass.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		merged()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        baseURLFromAddress(cfg.Server.HTTPAddress),
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ClientStorage{
			SessionFile: cfg.Storage.SessionFile,
		},
	}
	clientCfg.applyDefaults()

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = defaultClientBaseURL
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultClientTimeout
	}
	if cfg.Storage.SessionFile == "" {
		cfg.Storage.SessionFile = defaultClientSessionFile
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return ErrNoBaseURL
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

// baseURLFromAddress turns a "host:port" listen address into a URL the
// client can dial. Addresses that already carry a scheme pass through.
func baseURLFromAddress(address string) string {
	if address == "" {
		return ""
	}

	if strings.Contains(address, "://") {
		return address
	}

	return "http://" + address
}
