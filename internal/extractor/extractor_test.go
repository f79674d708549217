package extractor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/originbyte/ob-sdk-go/bindings"
	"github.com/originbyte/ob-sdk-go/internal/config"
	"github.com/originbyte/ob-sdk-go/internal/models"
	"github.com/originbyte/ob-sdk-go/internal/output"
	"github.com/originbyte/ob-sdk-go/internal/output/jsonl"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu      sync.Mutex
	objects map[string]suiclient.ObjectResponse
	calls   [][]string
	err     error
}

func (f *fakeReader) MultiGetObjects(_ context.Context, ids []string, _ suiclient.ObjectDataOptions) ([]suiclient.ObjectResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]suiclient.ObjectResponse, len(ids))
	for i, id := range ids {
		r, ok := f.lookup(id)
		if !ok {
			r = suiclient.ObjectResponse{Error: &suiclient.ObjectError{Code: "notExists", ObjectID: id}}
		}
		out[i] = r
	}
	return out, nil
}

// lookup matches ids the way a node does, whatever width the key was written in.
func (f *fakeReader) lookup(id string) (suiclient.ObjectResponse, bool) {
	for key, r := range f.objects {
		if fullID(key) == fullID(id) {
			return r, true
		}
	}
	return suiclient.ObjectResponse{}, false
}

func fullID(id string) string {
	return movetype.MustParseAddress(id).String()
}

type memOutput struct {
	mu      sync.Mutex
	objects map[string]*models.Object
}

func newMemOutput() *memOutput {
	return &memOutput{objects: make(map[string]*models.Object)}
}

func (m *memOutput) WriteObjects(_ context.Context, objects []*models.Object) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range objects {
		m.objects[o.ID] = o
	}
	return nil
}

func (m *memOutput) GetObject(_ context.Context, id string) (*models.Object, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.objects[id]; ok {
		return o, nil
	}
	return nil, output.ErrNotFound
}

func (m *memOutput) GetMissingObjectIDs(_ context.Context, ids []string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var missing []string
	for _, id := range ids {
		if _, ok := m.objects[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (m *memOutput) Close() error { return nil }

func clockObject(id string, ts byte) suiclient.ObjectResponse {
	raw := make([]byte, 40)
	raw[31] = 6
	raw[32] = ts
	return suiclient.ObjectResponse{Data: &suiclient.ObjectData{
		ObjectID: fullID(id),
		Version:  3,
		Digest:   "11111111111111111111111111111111",
		Type:     "0x2::clock::Clock",
		Owner:    &suiclient.Owner{Shared: &suiclient.SharedOwner{InitialSharedVersion: 1}},
		Bcs: &suiclient.RawData{
			DataType: "moveObject",
			Type:     "0x2::clock::Clock",
			BcsBytes: base64.StdEncoding.EncodeToString(raw),
		},
	}}
}

func unboundObject(id string) suiclient.ObjectResponse {
	return suiclient.ObjectResponse{Data: &suiclient.ObjectData{
		ObjectID: fullID(id),
		Version:  1,
		Type:     "0x99::game::Hero",
		Content: &suiclient.ParsedData{
			DataType: "moveObject",
			Type:     "0x99::game::Hero",
			Fields:   json.RawMessage(`{"level":"3"}`),
		},
		Bcs: &suiclient.RawData{DataType: "moveObject", Type: "0x99::game::Hero", BcsBytes: "AwAAAAAAAAA="},
	}}
}

func testConfig() config.ExtractConfig {
	return config.ExtractConfig{MaxConcurrency: 2, BatchSize: 2}
}

func TestExtract(t *testing.T) {
	reader := &fakeReader{objects: map[string]suiclient.ObjectResponse{
		"0x6":  clockObject("0x6", 9),
		"0x99": unboundObject("0x99"),
	}}
	out := newMemOutput()
	e := New(reader, bindings.Loader(), out, testConfig(), nil)

	stats, err := e.Extract(context.Background(), []string{"0x6", "0x99", "0x7"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Written: 2, Failed: 1}, stats)
	assert.Len(t, reader.calls, 2)

	clock, err := out.GetObject(context.Background(), fullID("0x6"))
	require.NoError(t, err)
	assert.True(t, clock.Decoded)
	assert.JSONEq(t, `{
		"$typeName": "0x2::clock::Clock",
		"$typeArgs": [],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000006",
		"timestampMs": "9"
	}`, string(clock.Data))
	assert.JSONEq(t, `{"Shared":{"initial_shared_version":"1"}}`, string(clock.Owner))

	hero, err := out.GetObject(context.Background(), fullID("0x99"))
	require.NoError(t, err)
	assert.False(t, hero.Decoded)
	assert.JSONEq(t, `{"level":"3"}`, string(hero.Data))
}

func TestExtractResume(t *testing.T) {
	reader := &fakeReader{objects: map[string]suiclient.ObjectResponse{
		"0x6": clockObject("0x6", 1),
		"0x8": clockObject("0x8", 2),
	}}
	out := newMemOutput()
	require.NoError(t, out.WriteObjects(context.Background(), []*models.Object{{ID: fullID("0x6")}}))

	cfg := testConfig()
	cfg.Resume = true
	stats, err := New(reader, bindings.Loader(), out, cfg, nil).Extract(context.Background(), []string{"0x6", "0x8"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Written: 1, Skipped: 1}, stats)
	assert.Equal(t, [][]string{{fullID("0x8")}}, reader.calls)
}

func TestExtractResumeShortIDs(t *testing.T) {
	reader := &fakeReader{objects: map[string]suiclient.ObjectResponse{"0x6": clockObject("0x6", 1)}}
	path := filepath.Join(t.TempDir(), "objects.jsonl")
	cfg := testConfig()
	cfg.Resume = true

	run := func(ids ...string) Stats {
		out, err := jsonl.Open(path)
		require.NoError(t, err)
		defer out.Close()
		stats, err := New(reader, bindings.Loader(), out, cfg, nil).Extract(context.Background(), ids)
		require.NoError(t, err)
		return stats
	}

	assert.Equal(t, Stats{Written: 1}, run("0x6"))
	assert.Equal(t, Stats{Skipped: 1}, run("0x6"))
	assert.Equal(t, Stats{Skipped: 1}, run("6", "0x06", "0x0000000000000000000000000000000000000000000000000000000000000006"))
	assert.Len(t, reader.calls, 1)
}

func TestNormalizeIDs(t *testing.T) {
	ids, err := NormalizeIDs([]string{"0x6", "0X6", "0xAB", "ab"})
	require.NoError(t, err)
	assert.Equal(t, []string{fullID("0x6"), fullID("0xab")}, ids)

	_, err = NormalizeIDs([]string{"0x6", "not-an-id"})
	assert.ErrorIs(t, err, movetype.ErrInvalidAddress)

	_, err = New(&fakeReader{}, bindings.Loader(), newMemOutput(), testConfig(), nil).Extract(context.Background(), []string{"0xzz"})
	assert.ErrorIs(t, err, movetype.ErrInvalidAddress)
}

func TestExtractErrors(t *testing.T) {
	cases := []struct {
		name    string
		reader  *fakeReader
		wantErr string
	}{
		{
			name:    "transport",
			reader:  &fakeReader{err: errors.New("connection refused")},
			wantErr: "failed to get objects: connection refused",
		},
		{
			name: "corrupt bcs",
			reader: &fakeReader{objects: map[string]suiclient.ObjectResponse{
				"0x6": {Data: &suiclient.ObjectData{
					ObjectID: "0x6",
					Bcs:      &suiclient.RawData{DataType: "moveObject", Type: "0x2::clock::Clock", BcsBytes: "AAAA"},
				}},
			}},
			wantErr: "failed to decode 0x2::clock::Clock",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.reader, bindings.Loader(), newMemOutput(), testConfig(), nil).Extract(context.Background(), []string{"0x6"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestWatchStopsOnCancel(t *testing.T) {
	reader := &fakeReader{objects: map[string]suiclient.ObjectResponse{"0x6": clockObject("0x6", 1)}}
	cfg := testConfig()
	cfg.Watch, cfg.WatchInterval = true, 10*time.Millisecond
	e := New(reader, bindings.Loader(), newMemOutput(), cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
	defer cancel()
	require.NoError(t, e.Watch(ctx, []string{"0x6"}))

	reader.mu.Lock()
	defer reader.mu.Unlock()
	assert.GreaterOrEqual(t, len(reader.calls), 2)
}

func TestWatchResumesOnlyFirstRound(t *testing.T) {
	reader := &fakeReader{objects: map[string]suiclient.ObjectResponse{"0x6": clockObject("0x6", 2)}}
	out := newMemOutput()
	require.NoError(t, out.WriteObjects(context.Background(), []*models.Object{{ID: fullID("0x6"), Version: 1}}))

	cfg := testConfig()
	cfg.Resume = true
	cfg.Watch, cfg.WatchInterval = true, 10*time.Millisecond
	e := New(reader, bindings.Loader(), out, cfg, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()
	require.NoError(t, e.Watch(ctx, []string{"0x6"}))

	reader.mu.Lock()
	assert.NotEmpty(t, reader.calls)
	reader.mu.Unlock()

	stored, err := out.GetObject(context.Background(), fullID("0x6"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), stored.Version)
}

func TestSplit(t *testing.T) {
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, split([]string{"a", "b", "c"}, 2))
	assert.Nil(t, split(nil, 2))
}

func TestDecodeObjectFromContent(t *testing.T) {
	data := &suiclient.ObjectData{
		ObjectID: "0x6",
		Content: &suiclient.ParsedData{
			DataType: "moveObject",
			Type:     "0x2::clock::Clock",
			Fields:   json.RawMessage(`{"id": {"id": "0x6"}, "timestamp_ms": "12"}`),
		},
	}
	got, err := DecodeObject(bindings.Loader(), data)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "0x2::clock::Clock",
		"$typeArgs": [],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000006",
		"timestampMs": "12"
	}`, string(got))

	_, err = DecodeObject(bindings.Loader(), &suiclient.ObjectData{ObjectID: "0x6"})
	assert.ErrorIs(t, err, reified.ErrNotMoveObject)
}

func TestDecodeOrRaw(t *testing.T) {
	cases := []struct {
		name    string
		data    *suiclient.ObjectData
		want    string
		decoded bool
	}{
		{name: "bound", data: clockObject("0x6", 4).Data, want: `{"$typeName":"0x2::clock::Clock","$typeArgs":[],"id":"` + fullID("0x6") + `","timestampMs":"4"}`, decoded: true},
		{name: "unbound", data: unboundObject("0x99").Data, want: `{"level":"3"}`},
		{name: "package", data: &suiclient.ObjectData{ObjectID: "0x2"}, want: `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, decoded, err := DecodeOrRaw(bindings.Loader(), tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.decoded, decoded)
			assert.JSONEq(t, tc.want, string(got))
		})
	}

	corrupt := &suiclient.ObjectData{
		ObjectID: "0x6",
		Bcs:      &suiclient.RawData{DataType: "moveObject", Type: "0x2::clock::Clock", BcsBytes: "AAAA"},
	}
	_, _, err := DecodeOrRaw(bindings.Loader(), corrupt)
	assert.Error(t, err)
}
