package dynamicfield

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGetter struct {
	resp *suiclient.ObjectResponse
	ids  []string
}

func (g *recordingGetter) GetObject(_ context.Context, id string, _ suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error) {
	g.ids = append(g.ids, id)
	return g.resp, nil
}

func TestFieldID(t *testing.T) {
	parent := movetype.MustParseAddress("0xabc")

	id, err := FieldID(parent, reified.U64, 5)
	require.NoError(t, err)

	e := bcs.NewEncoder()
	e.WriteU64(5)
	tag, err := movetype.ParseTypeTag("u64")
	require.NoError(t, err)
	want, err := movetype.DeriveDynamicFieldID(parent, tag, e.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, id)

	other, err := FieldID(parent, reified.U64, 6)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)

	_, err = FieldID(parent, reified.Phantom("0x2::sui::SUI"), nil)
	assert.Error(t, err)
}

func TestFetchByKey(t *testing.T) {
	parent := movetype.MustParseAddress("0xabc")
	id, err := FieldID(parent, reified.String, "name")
	require.NoError(t, err)

	st := FieldReified(reified.String, reified.Bool)
	field := Field[string, bool]{
		TypeParams: reified.TypeParams{TypeArgs: []string{"0x1::string::String", "bool"}},
		ID:         id,
		Name:       "name",
		Value:      true,
	}
	data, err := st.ToBCS(field)
	require.NoError(t, err)

	g := &recordingGetter{resp: &suiclient.ObjectResponse{Data: &suiclient.ObjectData{
		ObjectID: id.String(),
		Bcs: &suiclient.RawData{
			DataType: "moveObject",
			Type:     "0x2::dynamic_field::Field<0x1::string::String, bool>",
			BcsBytes: base64.StdEncoding.EncodeToString(data),
		},
	}}}

	got, err := FetchByKey(context.Background(), g, parent, reified.String, reified.Bool, "name")
	require.NoError(t, err)
	assert.Equal(t, field, got)
	assert.Equal(t, []string{id.String()}, g.ids)
}
