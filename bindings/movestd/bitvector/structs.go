package bitvector

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const BitVectorTypeName = addresses.MoveStdlib + "::bit_vector::BitVector"

type BitVector struct {
	Length   uint64
	BitField []bool
}

var bitVectorType = reified.NewStructType(BitVectorTypeName, nil, func(x *BitVector) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("length", reified.U64, &x.Length),
		reified.Field("bit_field", reified.Vector(reified.Bool), &x.BitField),
	}
})

func IsBitVector(typ string) bool {
	return bitVectorType.IsType(typ)
}

func BitVectorReified() *reified.StructType[BitVector] {
	return bitVectorType
}

func (v BitVector) MarshalBCS(e *bcs.Encoder) error {
	return bitVectorType.EncodeBCS(e, v)
}

func (v BitVector) ToJSONField() any {
	return bitVectorType.ToJSONField(v)
}

func (v BitVector) MarshalJSON() ([]byte, error) {
	return bitVectorType.ToJSON(v)
}

func BitVectorFromBCS(data []byte) (BitVector, error) {
	return bitVectorType.FromBCS(data)
}

func BitVectorFromFields(fields any) (BitVector, error) {
	return bitVectorType.FromFields(fields)
}

func BitVectorFromFieldsWithTypes(item any) (BitVector, error) {
	return bitVectorType.FromFieldsWithTypes(item)
}

func BitVectorFromJSONField(field any) (BitVector, error) {
	return bitVectorType.FromJSONField(field)
}

func BitVectorFromJSON(data []byte) (BitVector, error) {
	return bitVectorType.FromJSON(data)
}

func BitVectorFromSuiParsedData(content *suiclient.ParsedData) (BitVector, error) {
	return bitVectorType.FromSuiParsedData(content)
}

func FetchBitVector(ctx context.Context, getter reified.ObjectGetter, id string) (BitVector, error) {
	return bitVectorType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(BitVectorTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[BitVector](bitVectorType)
		}),
	)
}
