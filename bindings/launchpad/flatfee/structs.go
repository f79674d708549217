// Package flatfee binds launchpad::flat_fee, a marketplace fee charged as a
// fixed share of the proceeds.
package flatfee

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const FlatFeeTypeName = addresses.Launchpad + "::flat_fee::FlatFee"

type FlatFee struct {
	ID      movetype.Address
	RateBps uint64
}

var flatFeeType = reified.NewStructType(FlatFeeTypeName, nil, func(x *FlatFee) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("id", reified.UID, &x.ID),
		reified.Field("rate_bps", reified.U64, &x.RateBps),
	}
})

func IsFlatFee(typ string) bool {
	return flatFeeType.IsType(typ)
}

func FlatFeeReified() *reified.StructType[FlatFee] {
	return flatFeeType
}

func (v FlatFee) MarshalBCS(e *bcs.Encoder) error {
	return flatFeeType.EncodeBCS(e, v)
}

func (v FlatFee) ToJSONField() any {
	return flatFeeType.ToJSONField(v)
}

func (v FlatFee) MarshalJSON() ([]byte, error) {
	return flatFeeType.ToJSON(v)
}

func FlatFeeFromBCS(data []byte) (FlatFee, error) {
	return flatFeeType.FromBCS(data)
}

func FlatFeeFromFields(fields any) (FlatFee, error) {
	return flatFeeType.FromFields(fields)
}

func FlatFeeFromFieldsWithTypes(item any) (FlatFee, error) {
	return flatFeeType.FromFieldsWithTypes(item)
}

func FlatFeeFromJSONField(field any) (FlatFee, error) {
	return flatFeeType.FromJSONField(field)
}

func FlatFeeFromJSON(data []byte) (FlatFee, error) {
	return flatFeeType.FromJSON(data)
}

func FlatFeeFromSuiParsedData(content *suiclient.ParsedData) (FlatFee, error) {
	return flatFeeType.FromSuiParsedData(content)
}

func FetchFlatFee(ctx context.Context, getter reified.ObjectGetter, id string) (FlatFee, error) {
	return flatFeeType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(FlatFeeTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[FlatFee](flatFeeType)
		}),
	)
}
