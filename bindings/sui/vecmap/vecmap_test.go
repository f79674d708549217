package vecmap

import (
	"testing"

	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVecMap(t *testing.T) {
	st := VecMapReified(reified.String, reified.U64)
	assert.Equal(t, "0x2::vec_map::VecMap<0x1::string::String, u64>", st.TypeString())

	entryArgs := reified.TypeParams{TypeArgs: []string{"0x1::string::String", "u64"}}
	v := VecMap[string, uint64]{
		TypeParams: entryArgs,
		Contents: []Entry[string, uint64]{
			{TypeParams: entryArgs, Key: "a", Value: 1},
			{TypeParams: entryArgs, Key: "b", Value: 2},
		},
	}

	data, err := st.ToBCS(v)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 1, 'a', 1, 0, 0, 0, 0, 0, 0, 0, 1, 'b', 2, 0, 0, 0, 0, 0, 0, 0}, data)

	got, err := VecMapFromBCS(reified.String, reified.U64, data)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	js, err := st.ToJSON(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "0x2::vec_map::VecMap",
		"$typeArgs": ["0x1::string::String", "u64"],
		"contents": [{"key": "a", "value": "1"}, {"key": "b", "value": "2"}]
	}`, string(js))

	got, err = VecMapFromJSON(reified.String, reified.U64, js)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = VecMapFromJSON(reified.String, reified.U8, js)
	assert.ErrorIs(t, err, reified.ErrTypeMismatch)
}

func TestVecMapFromFieldsWithTypes(t *testing.T) {
	item := map[string]any{
		"type": "0x2::vec_map::VecMap<address, bool>",
		"fields": map[string]any{
			"contents": []any{
				map[string]any{
					"type":   "0x2::vec_map::Entry<address, bool>",
					"fields": map[string]any{"key": "0x7", "value": true},
				},
			},
		},
	}
	got, err := VecMapFromFieldsWithTypes(reified.Address, reified.Bool, item)
	require.NoError(t, err)
	require.Len(t, got.Contents, 1)
	assert.True(t, got.Contents[0].Value)
	assert.Equal(t, byte(7), got.Contents[0].Key[31])
	assert.True(t, IsVecMap("0x2::vec_map::VecMap<address, bool>"))
	assert.False(t, IsVecMap("0x2::vec_map::Entry<address, bool>"))
}
