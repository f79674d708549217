// Package extractor fetches objects from a fullnode in concurrent batches,
// decodes them with the bindings and hands them to an output handler.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/internal/config"
	"github.com/originbyte/ob-sdk-go/internal/models"
	"github.com/originbyte/ob-sdk-go/internal/output"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ObjectReader is the part of suiclient.Client the extractor needs.
type ObjectReader interface {
	MultiGetObjects(ctx context.Context, ids []string, opts suiclient.ObjectDataOptions) ([]suiclient.ObjectResponse, error)
}

var readOptions = suiclient.ObjectDataOptions{
	ShowType:    true,
	ShowOwner:   true,
	ShowContent: true,
	ShowBcs:     true,
}

type Extractor struct {
	reader ObjectReader
	loader *reified.Loader
	out    output.OutputHandler
	cfg    config.ExtractConfig
	logger *zap.Logger

	// ShowProgress renders a progress bar on stderr for multi-batch runs.
	ShowProgress bool
}

func New(reader ObjectReader, loader *reified.Loader, out output.OutputHandler, cfg config.ExtractConfig, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{reader: reader, loader: loader, out: out, cfg: cfg, logger: logger}
}

// Stats counts what a run did.
type Stats struct {
	Written int
	Skipped int
	Failed  int
}

// Extract fetches ids and writes them to the output handler. Objects the
// node reports as missing or deleted are logged and skipped.
func (e *Extractor) Extract(ctx context.Context, ids []string) (Stats, error) {
	return e.extract(ctx, ids, e.cfg.Resume)
}

func (e *Extractor) extract(ctx context.Context, ids []string, resume bool) (Stats, error) {
	var stats Stats
	ids, err := NormalizeIDs(ids)
	if err != nil {
		return stats, err
	}
	if resume {
		missing, err := e.out.GetMissingObjectIDs(ctx, ids)
		if err != nil {
			return stats, fmt.Errorf("failed to get missing object ids: %w", err)
		}
		stats.Skipped = len(ids) - len(missing)
		if stats.Skipped > 0 {
			e.logger.Info("Skipping stored objects", zap.Int("count", stats.Skipped))
		}
		ids = missing
	}
	if len(ids) == 0 {
		return stats, nil
	}

	batches := split(ids, int(e.cfg.BatchSize))
	e.logger.Info("Extracting objects", zap.Int("objects", len(ids)), zap.Int("batches", len(batches)))

	var bar *progressbar.ProgressBar
	if e.ShowProgress && len(batches) > 1 {
		bar = progressbar.NewOptions(
			len(ids),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetDescription("Fetching objects..."),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
		if err := bar.RenderBlank(); err != nil {
			return stats, fmt.Errorf("failed to render progress bar: %w", err)
		}
	}

	written, failed, err := e.processBatches(ctx, batches, bar)
	stats.Written, stats.Failed = written, failed
	if err != nil {
		return stats, fmt.Errorf("failed to process objects: %w", err)
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			return stats, fmt.Errorf("failed to finish progress bar: %w", err)
		}
	}
	return stats, nil
}

// processBatches runs at most MaxConcurrency batches at a time.
func (e *Extractor) processBatches(parent context.Context, batches [][]string, bar *progressbar.ProgressBar) (int, int, error) {
	eg, ctx := errgroup.WithContext(parent)
	sem := make(chan struct{}, e.cfg.MaxConcurrency)
	results := make([]batchResult, len(batches))

	for i, batch := range batches {
		if ctx.Err() != nil {
			e.logger.Info("Processing cancelled")
			break
		}
		sem <- struct{}{}

		eg.Go(func() error {
			defer func() { <-sem }()

			res, err := e.processBatch(ctx, batch)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					e.logger.Error("Batch processing error",
						zap.String("first", batch[0]),
						zap.Int("size", len(batch)),
						zap.Error(err))
				}
				return err
			}
			results[i] = res

			if bar != nil {
				if err := bar.Add(len(batch)); err != nil {
					e.logger.Warn("Failed to update progress bar", zap.Error(err))
				}
			}
			return nil
		})
	}

	err := eg.Wait()
	var written, failed int
	for _, r := range results {
		written += r.written
		failed += r.failed
	}
	if err != nil {
		return written, failed, err
	}
	// the group context is always done after Wait
	return written, failed, parent.Err()
}

type batchResult struct {
	written int
	failed  int
}

func (e *Extractor) processBatch(ctx context.Context, ids []string) (batchResult, error) {
	var res batchResult
	resps, err := e.reader.MultiGetObjects(ctx, ids, readOptions)
	if err != nil {
		return res, fmt.Errorf("failed to get objects: %w", err)
	}
	if len(resps) != len(ids) {
		return res, fmt.Errorf("expected %d objects, got %d", len(ids), len(resps))
	}

	objects := make([]*models.Object, 0, len(resps))
	for i, r := range resps {
		if r.Error != nil {
			e.logger.Warn("Object not available", zap.String("id", ids[i]), zap.String("code", r.Error.Code))
			res.failed++
			continue
		}
		obj, err := e.toModel(r.Data)
		if err != nil {
			return res, fmt.Errorf("object %s: %w", ids[i], err)
		}
		objects = append(objects, obj)
	}

	if err := e.out.WriteObjects(ctx, objects); err != nil {
		return res, fmt.Errorf("failed to write objects: %w", err)
	}
	res.written = len(objects)
	return res, nil
}

func (e *Extractor) toModel(data *suiclient.ObjectData) (*models.Object, error) {
	if data == nil {
		return nil, errors.New("empty object data")
	}
	obj := &models.Object{
		ID:      data.ObjectID,
		Version: uint64(data.Version),
		Digest:  data.Digest,
		Type:    data.Type,
	}
	if data.Owner != nil {
		owner, err := json.Marshal(data.Owner)
		if err != nil {
			return nil, err
		}
		obj.Owner = owner
	}

	decoded, ok, err := DecodeOrRaw(e.loader, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		e.logger.Debug("Object type is not bound", zap.String("id", data.ObjectID), zap.String("type", data.Type))
	}
	obj.Data, obj.Decoded = decoded, ok
	return obj, nil
}

// DecodeOrRaw is DecodeObject with a fallback for types the loader does not
// know: it returns the raw content fields (or null) and false.
func DecodeOrRaw(loader *reified.Loader, data *suiclient.ObjectData) (json.RawMessage, bool, error) {
	decoded, err := DecodeObject(loader, data)
	switch {
	case err == nil:
		return decoded, true, nil
	case errors.Is(err, reified.ErrUnknownType) || errors.Is(err, reified.ErrNotMoveObject):
		if data.Content != nil && len(data.Content.Fields) > 0 {
			return data.Content.Fields, false, nil
		}
		return json.RawMessage("null"), false, nil
	default:
		return nil, false, err
	}
}

// DecodeObject decodes data with the codec the loader resolves for its type
// and renders it as JSON. BCS contents are preferred; the parsed content is
// used when the node did not send them.
func DecodeObject(loader *reified.Loader, data *suiclient.ObjectData) (json.RawMessage, error) {
	switch {
	case data.Bcs != nil && data.Bcs.DataType == "moveObject":
		codec, err := loader.Reified(data.Bcs.Type)
		if err != nil {
			return nil, err
		}
		raw, err := data.Bcs.Bytes()
		if err != nil {
			return nil, err
		}
		d := bcs.NewDecoder(raw)
		v, err := codec.DecodeBCS(d)
		if err == nil {
			err = d.Finish()
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", data.Bcs.Type, err)
		}
		return reified.ToJSON(codec, v)
	case data.Content != nil && data.Content.DataType == "moveObject":
		codec, err := loader.Reified(data.Content.Type)
		if err != nil {
			return nil, err
		}
		fields, err := data.Content.FieldsMap()
		if err != nil {
			return nil, err
		}
		v, err := codec.FromFieldsWithTypes(map[string]any{"type": data.Content.Type, "fields": fields})
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", data.Content.Type, err)
		}
		return reified.ToJSON(codec, v)
	default:
		return nil, fmt.Errorf("%w: %s", reified.ErrNotMoveObject, data.ObjectID)
	}
}

// NormalizeIDs rewrites object ids in the full width form the node returns,
// so they compare equal to stored ids. Duplicates are dropped.
func NormalizeIDs(ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		addr, err := movetype.ParseAddress(id)
		if err != nil {
			return nil, fmt.Errorf("invalid object id %q: %w", id, err)
		}
		full := addr.String()
		if _, ok := seen[full]; ok {
			continue
		}
		seen[full] = struct{}{}
		out = append(out, full)
	}
	return out, nil
}

func split(ids []string, size int) [][]string {
	var batches [][]string
	for len(ids) > size {
		batches = append(batches, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		batches = append(batches, ids)
	}
	return batches
}
