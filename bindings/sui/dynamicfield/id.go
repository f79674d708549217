package dynamicfield

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
)

// FieldID returns the object id of the Field stored under parent with the
// given key.
func FieldID[Name any](parent movetype.Address, name reified.Codec[Name], key Name) (movetype.Address, error) {
	tag, err := movetype.ParseTypeTag(name.TypeString())
	if err != nil {
		return movetype.Address{}, err
	}
	e := bcs.NewEncoder()
	if err := name.EncodeBCS(e, key); err != nil {
		return movetype.Address{}, err
	}
	return movetype.DeriveDynamicFieldID(parent, tag, e.Bytes())
}

// FetchByKey derives the id of the field stored under parent and fetches it.
func FetchByKey[Name any, Value any](ctx context.Context, getter reified.ObjectGetter, parent movetype.Address, name reified.Codec[Name], value reified.Codec[Value], key Name) (Field[Name, Value], error) {
	id, err := FieldID(parent, name, key)
	if err != nil {
		return Field[Name, Value]{}, err
	}
	return FetchField(ctx, getter, name, value, id.String())
}
