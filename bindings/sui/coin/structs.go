package coin

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/bindings/sui/balance"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	CoinTypeName         = addresses.Sui + "::coin::Coin"
	TreasuryCapTypeName  = addresses.Sui + "::coin::TreasuryCap"
	CoinMetadataTypeName = addresses.Sui + "::coin::CoinMetadata"
)

type Coin struct {
	reified.TypeParams
	ID      movetype.Address
	Balance balance.Balance
}

func IsCoin(typ string) bool {
	return movetype.HasTypeName(typ, CoinTypeName)
}

func CoinReified(t string) *reified.StructType[Coin] {
	return reified.NewStructType(CoinTypeName, []string{t}, func(x *Coin) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.UID, &x.ID),
			reified.Field("balance", balance.BalanceReified(t), &x.Balance),
		}
	})
}

func (v Coin) MarshalBCS(e *bcs.Encoder) error {
	return CoinReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v Coin) ToJSONField() any {
	return CoinReified(v.TypeArg(0)).ToJSONField(v)
}

func (v Coin) MarshalJSON() ([]byte, error) {
	return CoinReified(v.TypeArg(0)).ToJSON(v)
}

func CoinFromBCS(t string, data []byte) (Coin, error) {
	return CoinReified(t).FromBCS(data)
}

func CoinFromFields(t string, fields any) (Coin, error) {
	return CoinReified(t).FromFields(fields)
}

func CoinFromFieldsWithTypes(t string, item any) (Coin, error) {
	return CoinReified(t).FromFieldsWithTypes(item)
}

func CoinFromJSONField(t string, field any) (Coin, error) {
	return CoinReified(t).FromJSONField(field)
}

func CoinFromJSON(t string, data []byte) (Coin, error) {
	return CoinReified(t).FromJSON(data)
}

func CoinFromSuiParsedData(t string, content *suiclient.ParsedData) (Coin, error) {
	return CoinReified(t).FromSuiParsedData(content)
}

func FetchCoin(ctx context.Context, getter reified.ObjectGetter, t string, id string) (Coin, error) {
	return CoinReified(t).Fetch(ctx, getter, id)
}

type TreasuryCap struct {
	reified.TypeParams
	ID          movetype.Address
	TotalSupply balance.Supply
}

func IsTreasuryCap(typ string) bool {
	return movetype.HasTypeName(typ, TreasuryCapTypeName)
}

func TreasuryCapReified(t string) *reified.StructType[TreasuryCap] {
	return reified.NewStructType(TreasuryCapTypeName, []string{t}, func(x *TreasuryCap) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.UID, &x.ID),
			reified.Field("total_supply", balance.SupplyReified(t), &x.TotalSupply),
		}
	})
}

func (v TreasuryCap) MarshalBCS(e *bcs.Encoder) error {
	return TreasuryCapReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v TreasuryCap) ToJSONField() any {
	return TreasuryCapReified(v.TypeArg(0)).ToJSONField(v)
}

func (v TreasuryCap) MarshalJSON() ([]byte, error) {
	return TreasuryCapReified(v.TypeArg(0)).ToJSON(v)
}

func TreasuryCapFromBCS(t string, data []byte) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromBCS(data)
}

func TreasuryCapFromFields(t string, fields any) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromFields(fields)
}

func TreasuryCapFromFieldsWithTypes(t string, item any) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromFieldsWithTypes(item)
}

func TreasuryCapFromJSONField(t string, field any) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromJSONField(field)
}

func TreasuryCapFromJSON(t string, data []byte) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromJSON(data)
}

func TreasuryCapFromSuiParsedData(t string, content *suiclient.ParsedData) (TreasuryCap, error) {
	return TreasuryCapReified(t).FromSuiParsedData(content)
}

func FetchTreasuryCap(ctx context.Context, getter reified.ObjectGetter, t string, id string) (TreasuryCap, error) {
	return TreasuryCapReified(t).Fetch(ctx, getter, id)
}

type CoinMetadata struct {
	reified.TypeParams
	ID          movetype.Address
	Decimals    uint8
	Name        string
	Symbol      string
	Description string
	IconURL     *string
}

func IsCoinMetadata(typ string) bool {
	return movetype.HasTypeName(typ, CoinMetadataTypeName)
}

func CoinMetadataReified(t string) *reified.StructType[CoinMetadata] {
	return reified.NewStructType(CoinMetadataTypeName, []string{t}, func(x *CoinMetadata) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.UID, &x.ID),
			reified.Field("decimals", reified.U8, &x.Decimals),
			reified.Field("name", reified.String, &x.Name),
			reified.Field("symbol", reified.ASCIIString, &x.Symbol),
			reified.Field("description", reified.String, &x.Description),
			reified.Field("icon_url", reified.Option(reified.URL), &x.IconURL),
		}
	})
}

func (v CoinMetadata) MarshalBCS(e *bcs.Encoder) error {
	return CoinMetadataReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v CoinMetadata) ToJSONField() any {
	return CoinMetadataReified(v.TypeArg(0)).ToJSONField(v)
}

func (v CoinMetadata) MarshalJSON() ([]byte, error) {
	return CoinMetadataReified(v.TypeArg(0)).ToJSON(v)
}

func CoinMetadataFromBCS(t string, data []byte) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromBCS(data)
}

func CoinMetadataFromFields(t string, fields any) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromFields(fields)
}

func CoinMetadataFromFieldsWithTypes(t string, item any) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromFieldsWithTypes(item)
}

func CoinMetadataFromJSONField(t string, field any) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromJSONField(field)
}

func CoinMetadataFromJSON(t string, data []byte) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromJSON(data)
}

func CoinMetadataFromSuiParsedData(t string, content *suiclient.ParsedData) (CoinMetadata, error) {
	return CoinMetadataReified(t).FromSuiParsedData(content)
}

func FetchCoinMetadata(ctx context.Context, getter reified.ObjectGetter, t string, id string) (CoinMetadata, error) {
	return CoinMetadataReified(t).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(CoinTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Coin](CoinReified(args[0].TypeString()))
		}),
		reified.ClassOf(TreasuryCapTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[TreasuryCap](TreasuryCapReified(args[0].TypeString()))
		}),
		reified.ClassOf(CoinMetadataTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[CoinMetadata](CoinMetadataReified(args[0].TypeString()))
		}),
	)
}
