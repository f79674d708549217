// Package suiclient is a small JSON-RPC client for the Sui fullnode read API.
package suiclient

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const jsonRPCVersion = "2.0"

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// Client talks to a single Sui fullnode.
type Client struct {
	url     string
	http    *resty.Client
	logger  *zap.Logger
	metrics *Metrics
	nextID  atomic.Uint64
}

type Option func(*Client)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.http.SetLogger(logger.Sugar())
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// WithMaxRetries retries transport failures and 5xx responses.
func WithMaxRetries(n uint) Option {
	return func(c *Client) { c.http.SetRetryCount(int(n)) }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func WithRetryWait(min, max time.Duration) Option {
	return func(c *Client) {
		c.http.SetRetryWaitTime(min)
		c.http.SetRetryMaxWaitTime(max)
	}
}

// New creates a client for the fullnode at url.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		logger: zap.NewNop(),
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || (r != nil && r.StatusCode() >= http.StatusInternalServerError)
			}),
	}
	c.http.SetLogger(c.logger.Sugar())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client sends requests to.
func (c *Client) URL() string {
	return c.url
}

// Call invokes method with params and decodes the result into out.
func (c *Client) Call(ctx context.Context, method string, out any, params ...any) error {
	if params == nil {
		params = []any{}
	}
	req := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	started := time.Now()
	resp, err := c.http.R().SetContext(ctx).SetBody(req).Post(c.url)
	if err != nil {
		c.metrics.observe(method, statusTransportError, started)
		return errors.Wrapf(err, "%s request failed", method)
	}
	if resp.IsError() {
		c.metrics.observe(method, statusTransportError, started)
		return fmt.Errorf("%s request failed: http status %d", method, resp.StatusCode())
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		c.metrics.observe(method, statusTransportError, started)
		return errors.WithMessagef(err, "failed to decode %s response", method)
	}
	if rpcResp.Error != nil {
		c.metrics.observe(method, statusRPCError, started)
		c.logger.Debug("rpc error", zap.String("method", method), zap.Int("code", rpcResp.Error.Code), zap.String("message", rpcResp.Error.Message))
		return rpcResp.Error
	}
	c.metrics.observe(method, statusOK, started)
	c.logger.Debug("rpc call", zap.String("method", method), zap.Uint64("id", req.ID), zap.Duration("took", time.Since(started)))

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return errors.WithMessagef(err, "failed to decode %s result", method)
	}
	return nil
}

// GetObject returns the object with the given id.
func (c *Client) GetObject(ctx context.Context, id string, opts ObjectDataOptions) (*ObjectResponse, error) {
	var out ObjectResponse
	if err := c.Call(ctx, "sui_getObject", &out, id, opts); err != nil {
		return nil, err
	}
	return &out, nil
}

// MultiGetObjects returns objects in the order of ids.
func (c *Client) MultiGetObjects(ctx context.Context, ids []string, opts ObjectDataOptions) ([]ObjectResponse, error) {
	var out []ObjectResponse
	if err := c.Call(ctx, "sui_multiGetObjects", &out, ids, opts); err != nil {
		return nil, err
	}
	if len(out) != len(ids) {
		return nil, fmt.Errorf("sui_multiGetObjects returned %d objects for %d ids", len(out), len(ids))
	}
	return out, nil
}

// GetDynamicFieldObject returns the dynamic field object of parentID named name.
func (c *Client) GetDynamicFieldObject(ctx context.Context, parentID string, name DynamicFieldName) (*ObjectResponse, error) {
	var out ObjectResponse
	if err := c.Call(ctx, "suix_getDynamicFieldObject", &out, parentID, name); err != nil {
		return nil, err
	}
	return &out, nil
}

// DevInspectTransactionBlock runs the BCS encoded TransactionKind without
// committing it.
func (c *Client) DevInspectTransactionBlock(ctx context.Context, sender string, kindBytes []byte) (*DevInspectResults, error) {
	var out DevInspectResults
	txBytes := base64.StdEncoding.EncodeToString(kindBytes)
	if err := c.Call(ctx, "sui_devInspectTransactionBlock", &out, sender, txBytes); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChainIdentifier returns the first four bytes of the genesis checkpoint
// digest, hex encoded.
func (c *Client) GetChainIdentifier(ctx context.Context) (string, error) {
	var out string
	if err := c.Call(ctx, "sui_getChainIdentifier", &out); err != nil {
		return "", err
	}
	return out, nil
}
