package pseudorandom

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/txb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRoundTrip(t *testing.T) {
	var value uint256.Int
	value.Lsh(uint256.NewInt(1), 128)
	counter := Counter{ID: movetype.MustParseAddress("0x5"), Value: value}

	data, err := bcs.Marshal(counter)
	require.NoError(t, err)
	require.Len(t, data, 64)
	assert.Equal(t, byte(1), data[32+16])

	got, err := CounterFromBCS(data)
	require.NoError(t, err)
	assert.Equal(t, counter, got)

	js, err := counter.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "`+CounterTypeName+`",
		"$typeArgs": [],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000005",
		"value": "340282366920938463463374607431768211456"
	}`, string(js))

	got, err = CounterFromJSON(js)
	require.NoError(t, err)
	assert.Equal(t, counter, got)
}

func TestCounterFromFields(t *testing.T) {
	cases := []struct {
		name    string
		fields  map[string]any
		want    uint64
		wantErr bool
	}{
		{name: "decimal string", fields: map[string]any{"id": map[string]any{"id": map[string]any{"bytes": "0x5"}}, "value": "7"}, want: 7},
		{name: "not a number", fields: map[string]any{"id": map[string]any{"id": map[string]any{"bytes": "0x5"}}, "value": "seven"}, wantErr: true},
		{name: "missing id", fields: map[string]any{"value": "7"}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := CounterFromFields(c.fields)
			if c.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Value.Uint64())
			assert.Equal(t, movetype.MustParseAddress("0x5"), got.ID)
		})
	}
}

func TestBuilders(t *testing.T) {
	tx := txb.New()
	_, err := BCSU64FromBytes(tx, []byte{1, 2, 3})
	require.NoError(t, err)
	_, err = Increment(tx, txb.ObjectID("0x5"))
	require.NoError(t, err)

	inputs := tx.Inputs()
	require.Len(t, inputs, 2)
	assert.Equal(t, []byte{3, 1, 2, 3}, inputs[0].Pure)
	assert.True(t, inputs[1].IsObject)

	call := tx.Commands()[1].(txb.MoveCall)
	assert.Equal(t, "pseudorandom", call.Target.Module)
	assert.Equal(t, "increment", call.Target.Function)
}
