// Package balance binds 0x2::balance. Sui nodes render a Balance as its bare
// decimal value instead of a struct.
package balance

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	BalanceTypeName = addresses.Sui + "::balance::Balance"
	SupplyTypeName  = addresses.Sui + "::balance::Supply"
)

type Balance struct {
	reified.TypeParams
	Value uint64
}

func IsBalance(typ string) bool {
	return movetype.HasTypeName(typ, BalanceTypeName)
}

func BalanceReified(t string) *reified.StructType[Balance] {
	return reified.NewStructType(BalanceTypeName, []string{t}, func(x *Balance) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("value", reified.U64, &x.Value),
		}
	}).Bare()
}

func (v Balance) MarshalBCS(e *bcs.Encoder) error {
	return BalanceReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v Balance) ToJSONField() any {
	return BalanceReified(v.TypeArg(0)).ToJSONField(v)
}

func (v Balance) MarshalJSON() ([]byte, error) {
	return BalanceReified(v.TypeArg(0)).ToJSON(v)
}

func BalanceFromBCS(t string, data []byte) (Balance, error) {
	return BalanceReified(t).FromBCS(data)
}

func BalanceFromFields(t string, fields any) (Balance, error) {
	return BalanceReified(t).FromFields(fields)
}

func BalanceFromFieldsWithTypes(t string, item any) (Balance, error) {
	return BalanceReified(t).FromFieldsWithTypes(item)
}

func BalanceFromJSONField(t string, field any) (Balance, error) {
	return BalanceReified(t).FromJSONField(field)
}

func BalanceFromJSON(t string, data []byte) (Balance, error) {
	return BalanceReified(t).FromJSON(data)
}

func BalanceFromSuiParsedData(t string, content *suiclient.ParsedData) (Balance, error) {
	return BalanceReified(t).FromSuiParsedData(content)
}

func FetchBalance(ctx context.Context, getter reified.ObjectGetter, t string, id string) (Balance, error) {
	return BalanceReified(t).Fetch(ctx, getter, id)
}

type Supply struct {
	reified.TypeParams
	Value uint64
}

func IsSupply(typ string) bool {
	return movetype.HasTypeName(typ, SupplyTypeName)
}

func SupplyReified(t string) *reified.StructType[Supply] {
	return reified.NewStructType(SupplyTypeName, []string{t}, func(x *Supply) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("value", reified.U64, &x.Value),
		}
	})
}

func (v Supply) MarshalBCS(e *bcs.Encoder) error {
	return SupplyReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v Supply) ToJSONField() any {
	return SupplyReified(v.TypeArg(0)).ToJSONField(v)
}

func (v Supply) MarshalJSON() ([]byte, error) {
	return SupplyReified(v.TypeArg(0)).ToJSON(v)
}

func SupplyFromBCS(t string, data []byte) (Supply, error) {
	return SupplyReified(t).FromBCS(data)
}

func SupplyFromFields(t string, fields any) (Supply, error) {
	return SupplyReified(t).FromFields(fields)
}

func SupplyFromFieldsWithTypes(t string, item any) (Supply, error) {
	return SupplyReified(t).FromFieldsWithTypes(item)
}

func SupplyFromJSONField(t string, field any) (Supply, error) {
	return SupplyReified(t).FromJSONField(field)
}

func SupplyFromJSON(t string, data []byte) (Supply, error) {
	return SupplyReified(t).FromJSON(data)
}

func SupplyFromSuiParsedData(t string, content *suiclient.ParsedData) (Supply, error) {
	return SupplyReified(t).FromSuiParsedData(content)
}

func FetchSupply(ctx context.Context, getter reified.ObjectGetter, t string, id string) (Supply, error) {
	return SupplyReified(t).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(BalanceTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Balance](BalanceReified(args[0].TypeString()))
		}),
		reified.ClassOf(SupplyTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Supply](SupplyReified(args[0].TypeString()))
		}),
	)
}
