// Package pseudorandom binds the pseudorandom module: a shared Counter mixed
// into hashes to derive per-call random values.
package pseudorandom

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const CounterTypeName = addresses.Pseudorandom + "::pseudorandom::Counter"

type Counter struct {
	ID    movetype.Address
	Value uint256.Int
}

var counterType = reified.NewStructType(CounterTypeName, nil, func(x *Counter) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("id", reified.UID, &x.ID),
		reified.Field("value", reified.U256, &x.Value),
	}
})

func IsCounter(typ string) bool {
	return counterType.IsType(typ)
}

func CounterReified() *reified.StructType[Counter] {
	return counterType
}

func (v Counter) MarshalBCS(e *bcs.Encoder) error {
	return counterType.EncodeBCS(e, v)
}

func (v Counter) ToJSONField() any {
	return counterType.ToJSONField(v)
}

func (v Counter) MarshalJSON() ([]byte, error) {
	return counterType.ToJSON(v)
}

func CounterFromBCS(data []byte) (Counter, error) {
	return counterType.FromBCS(data)
}

func CounterFromFields(fields any) (Counter, error) {
	return counterType.FromFields(fields)
}

func CounterFromFieldsWithTypes(item any) (Counter, error) {
	return counterType.FromFieldsWithTypes(item)
}

func CounterFromJSONField(field any) (Counter, error) {
	return counterType.FromJSONField(field)
}

func CounterFromJSON(data []byte) (Counter, error) {
	return counterType.FromJSON(data)
}

func CounterFromSuiParsedData(content *suiclient.ParsedData) (Counter, error) {
	return counterType.FromSuiParsedData(content)
}

func FetchCounter(ctx context.Context, getter reified.ObjectGetter, id string) (Counter, error) {
	return counterType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(CounterTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Counter](counterType)
		}),
	)
}
