package flatfee

import (
	"testing"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/txb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64le(v uint64) []byte {
	e := bcs.NewEncoder()
	e.WriteU64(v)
	return e.Bytes()
}

func TestFlatFeeRoundTrip(t *testing.T) {
	fee := FlatFee{ID: movetype.MustParseAddress("0xfee"), RateBps: 250}

	data, err := bcs.Marshal(fee)
	require.NoError(t, err)
	assert.Equal(t, u64le(250), data[32:])

	got, err := FlatFeeFromBCS(data)
	require.NoError(t, err)
	assert.Equal(t, fee, got)

	js, err := fee.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "`+FlatFeeTypeName+`",
		"$typeArgs": [],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000fee",
		"rateBps": "250"
	}`, string(js))

	got, err = FlatFeeFromJSON(js)
	require.NoError(t, err)
	assert.Equal(t, fee, got)
}

func TestIsFlatFee(t *testing.T) {
	assert.True(t, IsFlatFee(FlatFeeTypeName))
	assert.False(t, IsFlatFee(FlatFeeTypeName+"<u8>"))
	assert.False(t, IsFlatFee("0x2::flat_fee::FlatFee"))
}

func TestBuilders(t *testing.T) {
	tx := txb.New()

	_, err := New(tx, uint64(250))
	require.NoError(t, err)
	_, err = CalcFee(tx, CalcFeeArgs{ProceedsValue: "1000", RateBps: uint64(250)})
	require.NoError(t, err)
	_, err = CollectProceedsAndFees(tx, "0x2::sui::SUI", CollectProceedsAndFeesArgs{
		Marketplace: txb.ObjectID("0x10"),
		Listing:     txb.ObjectID("0x11"),
	})
	require.NoError(t, err)

	cmds := tx.Commands()
	require.Len(t, cmds, 3)

	create := cmds[0].(txb.MoveCall)
	assert.Equal(t, movetype.MustParseAddress(addresses.LaunchpadPublishedAt), create.Target.Package)
	assert.Equal(t, "flat_fee", create.Target.Module)
	assert.Equal(t, "new", create.Target.Function)
	assert.Empty(t, create.TypeArguments)

	collect := cmds[2].(txb.MoveCall)
	assert.Equal(t, "collect_proceeds_and_fees", collect.Target.Function)
	require.Len(t, collect.TypeArguments, 1)
	assert.Equal(t, "0x2::sui::SUI", collect.TypeArguments[0].String())

	inputs := tx.Inputs()
	require.Len(t, inputs, 5)
	assert.Equal(t, u64le(250), inputs[0].Pure)
	assert.Equal(t, u64le(1000), inputs[1].Pure)
	assert.True(t, inputs[3].IsObject)
	assert.Len(t, tx.Unresolved(), 2)
}

func TestBuilderBadArgument(t *testing.T) {
	tx := txb.New()
	_, err := InitFee(tx, "not a number")
	assert.Error(t, err)
	assert.Empty(t, tx.Commands())
}
