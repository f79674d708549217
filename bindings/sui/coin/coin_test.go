package coin

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/originbyte/ob-sdk-go/bindings/sui/balance"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suiType = "0x2::sui::SUI"

func suiCoin(value uint64) Coin {
	return Coin{
		TypeParams: reified.TypeParams{TypeArgs: []string{suiType}},
		ID:         movetype.MustParseAddress("0x5"),
		Balance: balance.Balance{
			TypeParams: reified.TypeParams{TypeArgs: []string{suiType}},
			Value:      value,
		},
	}
}

type getter struct {
	resp *suiclient.ObjectResponse
}

func (g getter) GetObject(context.Context, string, suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error) {
	return g.resp, nil
}

func TestIsCoin(t *testing.T) {
	cases := []struct {
		typ  string
		want bool
	}{
		{"0x2::coin::Coin<0x2::sui::SUI>", true},
		{"0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x2::sui::SUI>", true},
		{"0x2::coin::CoinMetadata<0x2::sui::SUI>", false},
		{"0x2::coin::TreasuryCap<0x2::sui::SUI>", false},
		{"0x3::coin::Coin<0x2::sui::SUI>", false},
	}
	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCoin(tc.typ))
		})
	}
}

func TestCoinBCS(t *testing.T) {
	v := suiCoin(100)
	data, err := CoinReified(suiType).ToBCS(v)
	require.NoError(t, err)
	require.Len(t, data, 40)
	assert.Equal(t, byte(5), data[31])
	assert.Equal(t, byte(100), data[32])

	got, err := CoinFromBCS(suiType, data)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Equal(t, suiType, got.TypeArg(0))
}

func TestCoinJSON(t *testing.T) {
	data, err := json.Marshal(suiCoin(7))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"$typeName": "0x2::coin::Coin",
		"$typeArgs": ["0x2::sui::SUI"],
		"id": "0x0000000000000000000000000000000000000000000000000000000000000005",
		"balance": {"value": "7"}
	}`, string(data))

	got, err := CoinFromJSON(suiType, data)
	require.NoError(t, err)
	assert.Equal(t, suiCoin(7), got)

	_, err = CoinFromJSON("0x2::coin::COIN", data)
	assert.ErrorIs(t, err, reified.ErrTypeMismatch)
}

func TestCoinFromSuiParsedData(t *testing.T) {
	content := &suiclient.ParsedData{
		DataType: "moveObject",
		Type:     "0x2::coin::Coin<0x2::sui::SUI>",
		Fields:   json.RawMessage(`{"id": {"id": "0x5"}, "balance": "42"}`),
	}
	got, err := CoinFromSuiParsedData(suiType, content)
	require.NoError(t, err)
	assert.Equal(t, suiCoin(42), got)
}

func TestFetchCoin(t *testing.T) {
	data, err := CoinReified(suiType).ToBCS(suiCoin(9))
	require.NoError(t, err)
	resp := &suiclient.ObjectResponse{Data: &suiclient.ObjectData{
		ObjectID: "0x5",
		Bcs: &suiclient.RawData{
			DataType: "moveObject",
			Type:     "0x2::coin::Coin<0x2::sui::SUI>",
			BcsBytes: base64.StdEncoding.EncodeToString(data),
		},
	}}

	got, err := FetchCoin(context.Background(), getter{resp: resp}, suiType, "0x5")
	require.NoError(t, err)
	assert.Equal(t, uint64(9), got.Balance.Value)

	_, err = FetchTreasuryCap(context.Background(), getter{resp: resp}, suiType, "0x5")
	assert.ErrorIs(t, err, reified.ErrNotMoveObject)
}

func TestCoinMetadataJSON(t *testing.T) {
	icon := "https://originbyte.io/icon.png"
	v := CoinMetadata{
		TypeParams:  reified.TypeParams{TypeArgs: []string{suiType}},
		ID:          movetype.MustParseAddress("0x9"),
		Decimals:    9,
		Name:        "Sui",
		Symbol:      "SUI",
		Description: "",
		IconURL:     &icon,
	}
	data, err := v.MarshalJSON()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, icon, m["iconUrl"])
	assert.Equal(t, float64(9), m["decimals"])

	got, err := CoinMetadataFromJSON(suiType, data)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	v.IconURL = nil
	data, err = v.MarshalJSON()
	require.NoError(t, err)
	got, err = CoinMetadataFromJSON(suiType, data)
	require.NoError(t, err)
	assert.Nil(t, got.IconURL)
}
