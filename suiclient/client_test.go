package suiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRPCServer answers every request with handler(method, params).
func newRPCServer(t *testing.T, handler func(method string, params []json.RawMessage) (any, *RPCError)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			ID     uint64            `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		require.NoError(t, json.Unmarshal(body, &req))

		result, rpcErr := handler(req.Method, req.Params)
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const coinObject = `{
	"data": {
		"objectId": "0x5",
		"version": "12",
		"digest": "11111111111111111111111111111111",
		"type": "0x2::coin::Coin<0x2::sui::SUI>",
		"owner": {"AddressOwner": "0x7"},
		"content": {
			"dataType": "moveObject",
			"type": "0x2::coin::Coin<0x2::sui::SUI>",
			"hasPublicTransfer": true,
			"fields": {"balance": "18446744073709551615", "id": {"id": "0x5"}}
		},
		"bcs": {
			"dataType": "moveObject",
			"type": "0x2::coin::Coin<0x2::sui::SUI>",
			"hasPublicTransfer": true,
			"version": 12,
			"bcsBytes": "AQID"
		}
	}
}`

func TestGetObject(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (any, *RPCError) {
		assert.Equal(t, "sui_getObject", method)
		require.Len(t, params, 2)
		assert.JSONEq(t, `"0x5"`, string(params[0]))
		assert.JSONEq(t, `{"showBcs":true,"showContent":true}`, string(params[1]))
		return json.RawMessage(coinObject), nil
	})

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	c := New(srv.URL, WithMetrics(metrics))

	resp, err := c.GetObject(context.Background(), "0x5", ObjectDataOptions{ShowBcs: true, ShowContent: true})
	require.NoError(t, err)
	require.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
	assert.Equal(t, SequenceNumber(12), resp.Data.Version)
	assert.Equal(t, "0x7", resp.Data.Owner.AddressOwner)
	assert.False(t, resp.Data.Owner.IsShared())

	fields, err := resp.Data.Content.FieldsMap()
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", fields["balance"])

	raw, err := resp.Data.Bcs.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, raw)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("sui_getObject", statusOK)))
}

func TestGetObjectError(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *RPCError) {
		return json.RawMessage(`{"error":{"code":"notExists","object_id":"0x9"}}`), nil
	})

	resp, err := New(srv.URL).GetObject(context.Background(), "0x9", ObjectDataOptions{})
	require.NoError(t, err)
	assert.Nil(t, resp.Data)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "notExists", resp.Error.Code)
	assert.Contains(t, resp.Error.Error(), "0x9")
}

func TestRPCError(t *testing.T) {
	srv := newRPCServer(t, func(string, []json.RawMessage) (any, *RPCError) {
		return nil, &RPCError{Code: -32602, Message: "invalid params"}
	})

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	_, err := New(srv.URL, WithMetrics(metrics)).GetChainIdentifier(context.Background())
	require.Error(t, err)

	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32602, rpcErr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues("sui_getChainIdentifier", statusRPCError)))
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"4c78adac"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithMaxRetries(3), WithRetryWait(time.Millisecond, 5*time.Millisecond))
	id, err := c.GetChainIdentifier(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "4c78adac", id)
	assert.Equal(t, int32(3), calls.Load())

	calls.Store(0)
	_, err = New(srv.URL).GetChainIdentifier(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http status 502")
}

func TestMultiGetObjects(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (any, *RPCError) {
		assert.Equal(t, "sui_multiGetObjects", method)
		return json.RawMessage(`[
			{"data":{"objectId":"0x1","version":"3","digest":"d1","owner":{"Shared":{"initial_shared_version":2}}}},
			{"data":{"objectId":"0x2","version":4,"digest":"d2","owner":"Immutable"}}
		]`), nil
	})

	out, err := New(srv.URL).MultiGetObjects(context.Background(), []string{"0x1", "0x2"}, ObjectDataOptions{ShowOwner: true})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Data.Owner.IsShared())
	assert.Equal(t, SequenceNumber(2), out[0].Data.Owner.Shared.InitialSharedVersion)
	assert.True(t, out[1].Data.Owner.Immutable)
	assert.Equal(t, SequenceNumber(4), out[1].Data.Version)

	_, err = New(srv.URL).MultiGetObjects(context.Background(), []string{"0x1"}, ObjectDataOptions{})
	assert.Error(t, err)
}

func TestDevInspectTransactionBlock(t *testing.T) {
	srv := newRPCServer(t, func(method string, params []json.RawMessage) (any, *RPCError) {
		assert.Equal(t, "sui_devInspectTransactionBlock", method)
		assert.JSONEq(t, `"0xabc"`, string(params[0]))
		assert.JSONEq(t, `"AAEC"`, string(params[1]))
		return json.RawMessage(`{"results":[{"returnValues":[[[42,0,0,0,0,0,0,0],"u64"]]}]}`), nil
	})

	res, err := New(srv.URL).DevInspectTransactionBlock(context.Background(), "0xabc", []byte{0, 1, 2})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	require.Len(t, res.Results[0].ReturnValues, 1)
	assert.Equal(t, "u64", res.Results[0].ReturnValues[0].Type)
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, res.Results[0].ReturnValues[0].Bytes)
}

func TestOwnerJSON(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{name: "address", json: `{"AddressOwner":"0x1"}`},
		{name: "object", json: `{"ObjectOwner":"0x2"}`},
		{name: "shared", json: `{"Shared":{"initial_shared_version":"7"}}`},
		{name: "immutable", json: `"Immutable"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var o Owner
			require.NoError(t, json.Unmarshal([]byte(tc.json), &o))
			out, err := json.Marshal(o)
			require.NoError(t, err)
			var again Owner
			require.NoError(t, json.Unmarshal(out, &again))
			assert.Equal(t, o, again)
		})
	}

	var o Owner
	assert.Error(t, json.Unmarshal([]byte(`"Mutable"`), &o))
}

func TestLookupNetwork(t *testing.T) {
	n, err := LookupNetwork("testnet")
	require.NoError(t, err)
	assert.Equal(t, Testnet, n)

	_, err = LookupNetwork("moonnet")
	assert.Error(t, err)
}
