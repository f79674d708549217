package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPCConfig(t *testing.T) {
	cases := []struct {
		name    string
		cfg     RPCConfig
		want    string
		wantErr string
	}{
		{name: "url wins", cfg: RPCConfig{URL: "http://node:9000", Network: "mainnet", Timeout: time.Second}, want: "http://node:9000"},
		{name: "network preset", cfg: RPCConfig{Network: "testnet", Timeout: time.Second}, want: "https://fullnode.testnet.sui.io:443"},
		{name: "unknown network", cfg: RPCConfig{Network: "moon", Timeout: time.Second}, wantErr: "unknown network"},
		{name: "nothing", cfg: RPCConfig{Timeout: time.Second}, wantErr: "either an RPC url or a network name is required"},
		{name: "no timeout", cfg: RPCConfig{URL: "http://node:9000"}, wantErr: "timeout must be positive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			got, err := tc.cfg.Endpoint()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractConfig(t *testing.T) {
	cases := []struct {
		name    string
		cfg     ExtractConfig
		wantErr string
	}{
		{name: "valid", cfg: ExtractConfig{MaxConcurrency: 4, BatchSize: 50}},
		{name: "no concurrency", cfg: ExtractConfig{BatchSize: 10}, wantErr: "max concurrency"},
		{name: "batch too large", cfg: ExtractConfig{MaxConcurrency: 1, BatchSize: 51}, wantErr: "batch size must be between 1 and 50"},
		{name: "watch without interval", cfg: ExtractConfig{MaxConcurrency: 1, BatchSize: 1, Watch: true}, wantErr: "watch interval"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestOutputConfig(t *testing.T) {
	assert.NoError(t, OutputConfig{Kind: OutputJSONL, Path: "-"}.Validate())
	assert.NoError(t, OutputConfig{Kind: OutputPostgres, PostgresDSN: "postgres://localhost/obsdk"}.Validate())
	assert.Error(t, OutputConfig{Kind: OutputPostgres}.Validate())
	assert.Error(t, OutputConfig{Kind: "csv"}.Validate())
}
