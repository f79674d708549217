// Package config holds the runtime configuration of the obsdk command.
package config

import (
	"time"

	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/pkg/errors"
)

// maxBatchSize is the most ids sui_multiGetObjects accepts in one call.
const maxBatchSize = 50

type RPCConfig struct {
	URL        string
	Network    string
	Timeout    time.Duration
	MaxRetries uint
}

func (c RPCConfig) Validate() error {
	if c.URL == "" && c.Network == "" {
		return errors.New("either an RPC url or a network name is required")
	}
	if c.URL == "" {
		if _, err := suiclient.LookupNetwork(c.Network); err != nil {
			return err
		}
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	return nil
}

// Endpoint returns URL, falling back to the preset of Network.
func (c RPCConfig) Endpoint() (string, error) {
	if c.URL != "" {
		return c.URL, nil
	}
	n, err := suiclient.LookupNetwork(c.Network)
	if err != nil {
		return "", err
	}
	return n.URL, nil
}

type ExtractConfig struct {
	MaxConcurrency uint
	BatchSize      uint
	// Resume skips ids already present in the output.
	Resume bool
	// Watch re-extracts every WatchInterval until cancelled.
	Watch         bool
	WatchInterval time.Duration
}

func (c ExtractConfig) Validate() error {
	if c.MaxConcurrency == 0 {
		return errors.New("max concurrency must be greater than 0")
	}
	if c.BatchSize == 0 || c.BatchSize > maxBatchSize {
		return errors.Errorf("batch size must be between 1 and %d", maxBatchSize)
	}
	if c.Watch && c.WatchInterval <= 0 {
		return errors.New("watch interval must be positive")
	}
	return nil
}

const (
	OutputJSONL    = "jsonl"
	OutputPostgres = "postgres"
)

type OutputConfig struct {
	Kind string
	// Path of the jsonl file; "-" writes to stdout.
	Path        string
	PostgresDSN string
}

func (c OutputConfig) Validate() error {
	switch c.Kind {
	case OutputJSONL:
		if c.Path == "" {
			return errors.New("jsonl output requires a path")
		}
	case OutputPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres output requires a connection string")
		}
	default:
		return errors.Errorf("unknown output %q", c.Kind)
	}
	return nil
}
