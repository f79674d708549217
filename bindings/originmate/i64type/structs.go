// Package i64type binds originmate::i64_type, a two's complement signed
// integer stored in a u64.
package i64type

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const I64TypeName = addresses.Originmate + "::i64_type::I64"

type I64 struct {
	Bits uint64
}

var i64Type = reified.NewStructType(I64TypeName, nil, func(x *I64) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("bits", reified.U64, &x.Bits),
	}
})

func IsI64(typ string) bool {
	return i64Type.IsType(typ)
}

func I64Reified() *reified.StructType[I64] {
	return i64Type
}

func (v I64) MarshalBCS(e *bcs.Encoder) error {
	return i64Type.EncodeBCS(e, v)
}

func (v I64) ToJSONField() any {
	return i64Type.ToJSONField(v)
}

func (v I64) MarshalJSON() ([]byte, error) {
	return i64Type.ToJSON(v)
}

func I64FromBCS(data []byte) (I64, error) {
	return i64Type.FromBCS(data)
}

func I64FromFields(fields any) (I64, error) {
	return i64Type.FromFields(fields)
}

func I64FromFieldsWithTypes(item any) (I64, error) {
	return i64Type.FromFieldsWithTypes(item)
}

func I64FromJSONField(field any) (I64, error) {
	return i64Type.FromJSONField(field)
}

func I64FromJSON(data []byte) (I64, error) {
	return i64Type.FromJSON(data)
}

func I64FromSuiParsedData(content *suiclient.ParsedData) (I64, error) {
	return i64Type.FromSuiParsedData(content)
}

func FetchI64(ctx context.Context, getter reified.ObjectGetter, id string) (I64, error) {
	return i64Type.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(I64TypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[I64](i64Type)
		}),
	)
}
