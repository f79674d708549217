package proceeds

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	ProceedsTypeName = addresses.Launchpad + "::proceeds::Proceeds"
	QtSoldTypeName   = addresses.Launchpad + "::proceeds::QtSold"
)

type Proceeds struct {
	ID     movetype.Address
	QtSold QtSold
}

var proceedsType = reified.NewStructType(ProceedsTypeName, nil, func(x *Proceeds) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("id", reified.UID, &x.ID),
		reified.Field("qt_sold", qtSoldType, &x.QtSold),
	}
})

func IsProceeds(typ string) bool {
	return proceedsType.IsType(typ)
}

func ProceedsReified() *reified.StructType[Proceeds] {
	return proceedsType
}

func (v Proceeds) MarshalBCS(e *bcs.Encoder) error {
	return proceedsType.EncodeBCS(e, v)
}

func (v Proceeds) ToJSONField() any {
	return proceedsType.ToJSONField(v)
}

func (v Proceeds) MarshalJSON() ([]byte, error) {
	return proceedsType.ToJSON(v)
}

func ProceedsFromBCS(data []byte) (Proceeds, error) {
	return proceedsType.FromBCS(data)
}

func ProceedsFromFields(fields any) (Proceeds, error) {
	return proceedsType.FromFields(fields)
}

func ProceedsFromFieldsWithTypes(item any) (Proceeds, error) {
	return proceedsType.FromFieldsWithTypes(item)
}

func ProceedsFromJSONField(field any) (Proceeds, error) {
	return proceedsType.FromJSONField(field)
}

func ProceedsFromJSON(data []byte) (Proceeds, error) {
	return proceedsType.FromJSON(data)
}

func ProceedsFromSuiParsedData(content *suiclient.ParsedData) (Proceeds, error) {
	return proceedsType.FromSuiParsedData(content)
}

func FetchProceeds(ctx context.Context, getter reified.ObjectGetter, id string) (Proceeds, error) {
	return proceedsType.Fetch(ctx, getter, id)
}

type QtSold struct {
	Collected uint64
	Total     uint64
}

var qtSoldType = reified.NewStructType(QtSoldTypeName, nil, func(x *QtSold) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("collected", reified.U64, &x.Collected),
		reified.Field("total", reified.U64, &x.Total),
	}
})

func IsQtSold(typ string) bool {
	return qtSoldType.IsType(typ)
}

func QtSoldReified() *reified.StructType[QtSold] {
	return qtSoldType
}

func (v QtSold) MarshalBCS(e *bcs.Encoder) error {
	return qtSoldType.EncodeBCS(e, v)
}

func (v QtSold) ToJSONField() any {
	return qtSoldType.ToJSONField(v)
}

func (v QtSold) MarshalJSON() ([]byte, error) {
	return qtSoldType.ToJSON(v)
}

func QtSoldFromBCS(data []byte) (QtSold, error) {
	return qtSoldType.FromBCS(data)
}

func QtSoldFromFields(fields any) (QtSold, error) {
	return qtSoldType.FromFields(fields)
}

func QtSoldFromFieldsWithTypes(item any) (QtSold, error) {
	return qtSoldType.FromFieldsWithTypes(item)
}

func QtSoldFromJSONField(field any) (QtSold, error) {
	return qtSoldType.FromJSONField(field)
}

func QtSoldFromJSON(data []byte) (QtSold, error) {
	return qtSoldType.FromJSON(data)
}

func QtSoldFromSuiParsedData(content *suiclient.ParsedData) (QtSold, error) {
	return qtSoldType.FromSuiParsedData(content)
}

func FetchQtSold(ctx context.Context, getter reified.ObjectGetter, id string) (QtSold, error) {
	return qtSoldType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(ProceedsTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Proceeds](proceedsType)
		}),
		reified.ClassOf(QtSoldTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[QtSold](qtSoldType)
		}),
	)
}
