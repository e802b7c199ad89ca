package config

import (
	"flag"
	"fmt"
	"time"
)

// DefaultClientAddress is the server base URL used by the client when
// nothing else is configured.
const DefaultClientAddress = "http://localhost:8080"

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// ServerAddress is the base URL of the auth server.
	// Env: CLIENT_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout for each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig builds the client configuration from environment
// variables and global flags in args. It returns the remaining positional
// arguments (the subcommand and its arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	var envCfg clientEnv
	if err := parseEnv(&envCfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("auth-client", flag.ContinueOnError)
	address := fs.String("s", "", "Server base URL")
	timeout := fs.Duration("timeout", 0, "Request timeout")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &envCfg.Client
	if *address != "" {
		cfg.ServerAddress = *address
	}
	if *timeout != 0 {
		cfg.RequestTimeout = *timeout
	}
	if cfg.ServerAddress == "" {
		cfg.ServerAddress = DefaultClientAddress
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
