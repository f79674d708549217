package obsdk

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/originbyte/ob-sdk-go/bindings"
	"github.com/originbyte/ob-sdk-go/internal/config"
	"github.com/originbyte/ob-sdk-go/internal/extractor"
	"github.com/originbyte/ob-sdk-go/internal/output"
	"github.com/originbyte/ob-sdk-go/internal/output/jsonl"
	"github.com/originbyte/ob-sdk-go/internal/output/postgresql"
	"github.com/originbyte/ob-sdk-go/internal/utils"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var getOptions = suiclient.ObjectDataOptions{
	ShowType:    true,
	ShowOwner:   true,
	ShowContent: true,
	ShowBcs:     true,
}

func newObjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "object",
		Short: "Read objects and decode them with the bindings",
	}
	cmd.AddCommand(newObjectGetCmd(a), newObjectFieldCmd(a), newObjectExtractCmd(a))
	return cmd
}

func newObjectGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <object-id>",
		Short: "Fetch an object and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.GetObject(cmd.Context(), args[0], getOptions)
			if err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), resp)
		},
	}
}

func newObjectFieldCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "field <parent-id> <type:value>",
		Short: "Fetch the dynamic field of a parent object by key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, raw, err := utils.SplitTypedValue(args[1])
			if err != nil {
				return err
			}
			value, err := utils.ParseValue(raw)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}
			resp, err := client.GetDynamicFieldObject(cmd.Context(), args[0], suiclient.DynamicFieldName{Type: typ, Value: value})
			if err != nil {
				return err
			}
			return printObject(cmd.OutOrStdout(), resp)
		},
	}
}

// printObject prints the decoded object, or its raw content fields when the
// bindings do not know its type.
func printObject(w io.Writer, resp *suiclient.ObjectResponse) error {
	if resp.Error != nil {
		return resp.Error
	}
	if resp.Data == nil {
		return errors.New("empty object response")
	}
	data, _, err := extractor.DecodeOrRaw(bindings.Loader(), resp.Data)
	if err != nil {
		return errors.WithMessagef(err, "failed to decode object %s", resp.Data.ObjectID)
	}
	return writeJSON(w, data)
}

func writeJSON(w io.Writer, data []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

func newObjectExtractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract [object-id...]",
		Short: "Fetch many objects concurrently into a jsonl file or postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := collectIDs(append(viper.GetStringSlice("ids"), args...), viper.GetString("ids-file"))
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return errors.New("no object ids given")
			}

			extractCfg := config.ExtractConfig{
				MaxConcurrency: viper.GetUint("max-concurrency"),
				BatchSize:      viper.GetUint("batch-size"),
				Resume:         viper.GetBool("resume"),
				Watch:          viper.GetBool("watch"),
				WatchInterval:  viper.GetDuration("watch-interval"),
			}
			if err := extractCfg.Validate(); err != nil {
				return err
			}
			outCfg := config.OutputConfig{
				Kind:        viper.GetString("output"),
				Path:        viper.GetString("out"),
				PostgresDSN: viper.GetString("postgres-dsn"),
			}
			if err := outCfg.Validate(); err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			out, err := openOutput(cmd, outCfg, a.logger)
			if err != nil {
				return err
			}
			defer func() {
				if err := out.Close(); err != nil {
					a.logger.Warn("Failed to close output", zap.Error(err))
				}
			}()

			e := extractor.New(client, bindings.Loader(), out, extractCfg, a.logger)
			e.ShowProgress = viper.GetBool("progress")
			if extractCfg.Watch {
				return e.Watch(cmd.Context(), ids)
			}
			stats, err := e.Extract(cmd.Context(), ids)
			if err != nil {
				return err
			}
			a.logger.Info("Extraction finished",
				zap.Int("written", stats.Written),
				zap.Int("skipped", stats.Skipped),
				zap.Int("failed", stats.Failed))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSlice("ids", nil, "Comma separated object ids")
	f.String("ids-file", "", "File with one object id per line")
	f.String("output", config.OutputJSONL, "Output: jsonl or postgres")
	f.String("out", "-", "jsonl output path, - for stdout")
	f.String("postgres-dsn", "", "Postgres connection string")
	f.Uint("max-concurrency", 4, "Concurrent batch requests")
	f.Uint("batch-size", 50, "Object ids per request")
	f.Bool("resume", false, "Skip objects already in the output")
	f.Bool("watch", false, "Keep re-reading the objects")
	f.Duration("watch-interval", 0, "Delay between watch rounds")
	f.Bool("progress", true, "Show a progress bar")
	return cmd
}

func openOutput(cmd *cobra.Command, cfg config.OutputConfig, logger *zap.Logger) (output.OutputHandler, error) {
	switch cfg.Kind {
	case config.OutputPostgres:
		return postgresql.Open(cmd.Context(), cfg.PostgresDSN, logger)
	default:
		if cfg.Path == "-" {
			return jsonl.NewOutputHandler(cmd.OutOrStdout()), nil
		}
		return jsonl.Open(cfg.Path)
	}
}

func collectIDs(args []string, file string) ([]string, error) {
	ids := append([]string(nil), args...)
	if file == "" {
		return ids, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return ids, nil
}
