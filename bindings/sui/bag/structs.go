package bag

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const BagTypeName = addresses.Sui + "::bag::Bag"

type Bag struct {
	ID   movetype.Address
	Size uint64
}

var bagType = reified.NewStructType(BagTypeName, nil, func(x *Bag) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("id", reified.UID, &x.ID),
		reified.Field("size", reified.U64, &x.Size),
	}
})

func IsBag(typ string) bool {
	return bagType.IsType(typ)
}

func BagReified() *reified.StructType[Bag] {
	return bagType
}

func (v Bag) MarshalBCS(e *bcs.Encoder) error {
	return bagType.EncodeBCS(e, v)
}

func (v Bag) ToJSONField() any {
	return bagType.ToJSONField(v)
}

func (v Bag) MarshalJSON() ([]byte, error) {
	return bagType.ToJSON(v)
}

func BagFromBCS(data []byte) (Bag, error) {
	return bagType.FromBCS(data)
}

func BagFromFields(fields any) (Bag, error) {
	return bagType.FromFields(fields)
}

func BagFromFieldsWithTypes(item any) (Bag, error) {
	return bagType.FromFieldsWithTypes(item)
}

func BagFromJSONField(field any) (Bag, error) {
	return bagType.FromJSONField(field)
}

func BagFromJSON(data []byte) (Bag, error) {
	return bagType.FromJSON(data)
}

func BagFromSuiParsedData(content *suiclient.ParsedData) (Bag, error) {
	return bagType.FromSuiParsedData(content)
}

func FetchBag(ctx context.Context, getter reified.ObjectGetter, id string) (Bag, error) {
	return bagType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(BagTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Bag](bagType)
		}),
	)
}
