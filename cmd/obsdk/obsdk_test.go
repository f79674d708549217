package obsdk

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/originbyte/ob-sdk-go/internal/models"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

// newNode serves the JSON-RPC methods the commands use.
func newNode(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     uint64 `json:"id"`
			Method string `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		result, ok := results[req.Method]
		if !ok {
			t.Errorf("unexpected method %s", req.Method)
			http.Error(w, "unexpected method", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  json.RawMessage(result),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

const clockResponse = `{
	"data": {
		"objectId": "0x0000000000000000000000000000000000000000000000000000000000000006",
		"version": "7",
		"digest": "11111111111111111111111111111111",
		"type": "0x2::clock::Clock",
		"owner": {"Shared": {"initial_shared_version": 1}},
		"content": {
			"dataType": "moveObject",
			"type": "0x2::clock::Clock",
			"hasPublicTransfer": false,
			"fields": {"id": {"id": "0x6"}, "timestamp_ms": "1700"}
		}
	}
}`

func TestTypeNormalize(t *testing.T) {
	cases := []struct {
		name string
		typ  string
		want []string
	}{
		{
			name: "struct",
			typ:  "0x0002::coin::Coin<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI>",
			want: []string{"type:  0x2::coin::Coin<0x2::sui::SUI>", "input: object", "bound: true"},
		},
		{
			name: "pure vector",
			typ:  "vector<u8>",
			want: []string{"type:  vector<u8>", "bcs:   0x0601", "input: pure", "bound: true"},
		},
		{
			name: "unbound struct",
			typ:  "0x99::game::Hero",
			want: []string{"type:  0x99::game::Hero", "input: object", "bound: false"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := run(t, "type", "normalize", c.typ)
			require.NoError(t, err)
			for _, line := range c.want {
				assert.Contains(t, out, line)
			}
		})
	}

	_, err := run(t, "type", "normalize", "0x2::coin::Coin<")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	names := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, names, "0x2::coin::Coin")
	assert.Contains(t, names, "0x2::clock::Clock")
	assert.IsNonDecreasing(t, names)
}

func TestBuildCall(t *testing.T) {
	tx, err := buildCall("0x0002::foo::bar", nil, []string{"u64:5"})
	require.NoError(t, err)
	kind, err := tx.KindBytes()
	require.NoError(t, err)

	want := []byte{0x00, 0x01, 0x00, 0x08, 5, 0, 0, 0, 0, 0, 0, 0, 0x01, 0x00}
	want = append(want, make([]byte, 31)...)
	want = append(want, 0x02, 3, 'f', 'o', 'o', 3, 'b', 'a', 'r', 0x00, 0x01, 0x01, 0x00, 0x00)
	assert.Equal(t, want, kind)

	cases := []struct {
		name     string
		target   string
		typeArgs []string
		args     []string
	}{
		{name: "bad target", target: "0x2::foo"},
		{name: "bad type argument", target: "0x2::foo::bar", typeArgs: []string{"vector<u8"}},
		{name: "bad argument", target: "0x2::foo::bar", args: []string{"u64"}},
		{name: "bad pure value", target: "0x2::foo::bar", args: []string{"u8:300"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := buildCall(c.target, c.typeArgs, c.args)
			assert.Error(t, err)
		})
	}
}

func TestCallPrintsKindBytes(t *testing.T) {
	out, err := run(t, "call", "0x2::foo::bar", "--arg", "u64:5", "--arg", "gas")
	require.NoError(t, err)

	kind, err := base64.StdEncoding.DecodeString(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), kind[0])
	// gas coin is the second argument
	assert.Equal(t, []byte{0x02, 0x01, 0x00, 0x00, 0x00}, kind[len(kind)-5:])
}

func TestCallInspect(t *testing.T) {
	const inspectResponse = `{
		"results": [{"returnValues": [
			[[42, 0, 0, 0, 0, 0, 0, 0], "u64"],
			[[1, 2], "0x99::game::Hero"]
		]}]
	}`
	srv := newNode(t, map[string]string{
		"sui_multiGetObjects":            "[" + clockResponse + "]",
		"sui_devInspectTransactionBlock": inspectResponse,
	})

	out, err := run(t, "call", "0x2::clock::timestamp_ms",
		"--arg", "0x2::clock::Clock:0x6", "--inspect", "--rpc-url", srv.URL)
	require.NoError(t, err)

	var got inspectOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 1)
	require.Len(t, got.Results[0], 2)
	assert.JSONEq(t, `"42"`, string(got.Results[0][0].Value))
	assert.Equal(t, "0x0102", got.Results[0][1].Hex)
	assert.Empty(t, got.Results[0][1].Value)
	assert.NotEmpty(t, got.KindBytes)
}

func TestDecodeResults(t *testing.T) {
	results := []suiclient.ExecutionResult{{ReturnValues: []suiclient.ReturnValue{
		{Bytes: []byte{1}, Type: "bool"},
		{Bytes: []byte{1, 2, 3}, Type: "u8"},
	}}}
	got := decodeResults(results, zap.NewNop())
	require.Len(t, got[0], 2)
	assert.JSONEq(t, `true`, string(got[0][0].Value))
	assert.Equal(t, "0x010203", got[0][1].Hex)
}

func TestObjectGet(t *testing.T) {
	srv := newNode(t, map[string]string{"sui_getObject": clockResponse})

	out, err := run(t, "object", "get", "0x6", "--rpc-url", srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "0x2::clock::Clock",
		"$typeArgs": [],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000006",
		"timestampMs": "1700"
	}`, out)
}

func TestObjectGetUnboundType(t *testing.T) {
	srv := newNode(t, map[string]string{"sui_getObject": `{
		"data": {
			"objectId": "0x0000000000000000000000000000000000000000000000000000000000000099",
			"version": "2",
			"digest": "11111111111111111111111111111111",
			"type": "0x99::game::Hero",
			"content": {
				"dataType": "moveObject",
				"type": "0x99::game::Hero",
				"hasPublicTransfer": true,
				"fields": {"level": "3"}
			}
		}
	}`})

	out, err := run(t, "object", "get", "0x99", "--rpc-url", srv.URL)
	require.NoError(t, err)
	assert.JSONEq(t, `{"level": "3"}`, out)
}

func TestObjectGetError(t *testing.T) {
	srv := newNode(t, map[string]string{
		"sui_getObject": `{"error": {"code": "notExists", "object_id": "0x7"}}`,
	})
	_, err := run(t, "object", "get", "0x7", "--rpc-url", srv.URL)
	var objErr *suiclient.ObjectError
	require.ErrorAs(t, err, &objErr)
	assert.Equal(t, "notExists", objErr.Code)
}

func TestObjectExtract(t *testing.T) {
	srv := newNode(t, map[string]string{"sui_multiGetObjects": "[" + clockResponse + "]"})
	dir := t.TempDir()
	ids := filepath.Join(dir, "ids.txt")
	require.NoError(t, os.WriteFile(ids, []byte("# clock\n0x6\n\n"), 0o600))
	path := filepath.Join(dir, "objects.jsonl")

	_, err := run(t, "object", "extract", "--ids-file", ids, "--out", path,
		"--progress=false", "--rpc-url", srv.URL)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var obj models.Object
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &obj))
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000006", obj.ID)
	assert.Equal(t, uint64(7), obj.Version)
	assert.True(t, obj.Decoded)
	assert.Contains(t, string(obj.Data), `"timestampMs":"1700"`)

	_, err = run(t, "object", "extract", "--ids", "0x6", "--resume", "--out", path,
		"--progress=false", "--rpc-url", srv.URL)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 1)
}

func TestObjectExtractValidation(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no ids", args: nil},
		{name: "batch too large", args: []string{"0x6", "--batch-size", "51"}},
		{name: "postgres without dsn", args: []string{"0x6", "--output", "postgres"}},
		{name: "watch without interval", args: []string{"0x6", "--watch"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := append([]string{"object", "extract", "--out", filepath.Join(t.TempDir(), "o.jsonl")}, c.args...)
			_, err := run(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestCollectIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids")
	require.NoError(t, os.WriteFile(path, []byte("0x1\n  0x2  \n#0x3\n"), 0o600))

	ids, err := collectIDs([]string{"0x0"}, path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x0", "0x1", "0x2"}, ids)

	_, err = collectIDs(nil, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
