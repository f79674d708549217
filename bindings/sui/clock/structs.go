package clock

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const ClockTypeName = addresses.Sui + "::clock::Clock"

type Clock struct {
	ID          movetype.Address
	TimestampMs uint64
}

var clockType = reified.NewStructType(ClockTypeName, nil, func(x *Clock) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("id", reified.UID, &x.ID),
		reified.Field("timestamp_ms", reified.U64, &x.TimestampMs),
	}
})

func IsClock(typ string) bool {
	return clockType.IsType(typ)
}

func ClockReified() *reified.StructType[Clock] {
	return clockType
}

func (v Clock) MarshalBCS(e *bcs.Encoder) error {
	return clockType.EncodeBCS(e, v)
}

func (v Clock) ToJSONField() any {
	return clockType.ToJSONField(v)
}

func (v Clock) MarshalJSON() ([]byte, error) {
	return clockType.ToJSON(v)
}

func ClockFromBCS(data []byte) (Clock, error) {
	return clockType.FromBCS(data)
}

func ClockFromFields(fields any) (Clock, error) {
	return clockType.FromFields(fields)
}

func ClockFromFieldsWithTypes(item any) (Clock, error) {
	return clockType.FromFieldsWithTypes(item)
}

func ClockFromJSONField(field any) (Clock, error) {
	return clockType.FromJSONField(field)
}

func ClockFromJSON(data []byte) (Clock, error) {
	return clockType.FromJSON(data)
}

func ClockFromSuiParsedData(content *suiclient.ParsedData) (Clock, error) {
	return clockType.FromSuiParsedData(content)
}

func FetchClock(ctx context.Context, getter reified.ObjectGetter, id string) (Clock, error) {
	return clockType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(ClockTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Clock](clockType)
		}),
	)
}
