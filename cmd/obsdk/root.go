// Package obsdk implements the obsdk command line tool.
package obsdk

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/originbyte/ob-sdk-go/internal/config"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const envPrefix = "OBSDK"

// app carries what PersistentPreRunE sets up for the subcommands.
type app struct {
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *suiclient.Metrics
	server   *http.Server
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           "obsdk",
		Short:         "Read and call OriginByte packages on Sui",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.shutdown()
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (yaml, toml or json)")
	pf.String("rpc-url", "", "Fullnode JSON-RPC url, overrides --network")
	pf.String("network", "mainnet", "Network preset: mainnet, testnet, devnet or localnet")
	pf.Duration("timeout", 30*time.Second, "RPC request timeout")
	pf.Uint("max-retries", 3, "Retries for failed RPC requests")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("metrics-addr", "", "Serve prometheus metrics on this address, e.g. :2112")

	cmd.AddCommand(
		newObjectCmd(a),
		newCallCmd(a),
		newTypeCmd(),
		newTypesCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, cancel := signalContext()
	defer cancel()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		cmd.PrintErrln("Error:", err)
		cancel()
		os.Exit(1)
	}
}

func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if file := viper.GetString("config"); file != "" {
		viper.SetConfigFile(file)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := bindFlags(cmd); err != nil {
		return err
	}
	logger, err := newLogger(viper.GetString("log-level"))
	if err != nil {
		return err
	}
	a.logger = logger

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	a.metrics = suiclient.NewMetrics(a.registry)

	if addr := viper.GetString("metrics-addr"); addr != "" {
		a.serveMetrics(addr)
	}
	return nil
}

func (a *app) serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}))
	a.server = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		a.logger.Info("Serving metrics", zap.String("addr", addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Metrics server failed", zap.Error(err))
		}
	}()
}

func (a *app) shutdown() error {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	_ = a.logger.Sync()
	return nil
}

func rpcConfig() config.RPCConfig {
	return config.RPCConfig{
		URL:        viper.GetString("rpc-url"),
		Network:    viper.GetString("network"),
		Timeout:    viper.GetDuration("timeout"),
		MaxRetries: viper.GetUint("max-retries"),
	}
}

func (a *app) client() (*suiclient.Client, error) {
	cfg := rpcConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	url, err := cfg.Endpoint()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Using fullnode", zap.String("url", url))
	return suiclient.New(url,
		suiclient.WithLogger(a.logger),
		suiclient.WithMetrics(a.metrics),
		suiclient.WithTimeout(cfg.Timeout),
		suiclient.WithMaxRetries(cfg.MaxRetries),
	), nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	if lvl.Level() == zap.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = lvl
	return cfg.Build()
}
