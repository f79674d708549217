// Package ascii binds 0x1::ascii. String values are plain Go strings
// checked to hold ASCII bytes only.
package ascii

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	StringTypeName = addresses.MoveStdlib + "::ascii::String"
	CharTypeName   = addresses.MoveStdlib + "::ascii::Char"
)

func IsString(typ string) bool {
	return movetype.SameType(typ, StringTypeName)
}

func StringReified() reified.Codec[string] {
	return reified.ASCIIString
}

type Char struct {
	Byte uint8
}

var charType = reified.NewStructType(CharTypeName, nil, func(x *Char) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("byte", reified.U8, &x.Byte),
	}
})

func IsChar(typ string) bool {
	return charType.IsType(typ)
}

func CharReified() *reified.StructType[Char] {
	return charType
}

func (v Char) MarshalBCS(e *bcs.Encoder) error {
	return charType.EncodeBCS(e, v)
}

func (v Char) ToJSONField() any {
	return charType.ToJSONField(v)
}

func (v Char) MarshalJSON() ([]byte, error) {
	return charType.ToJSON(v)
}

func CharFromBCS(data []byte) (Char, error) {
	return charType.FromBCS(data)
}

func CharFromFields(fields any) (Char, error) {
	return charType.FromFields(fields)
}

func CharFromFieldsWithTypes(item any) (Char, error) {
	return charType.FromFieldsWithTypes(item)
}

func CharFromJSONField(field any) (Char, error) {
	return charType.FromJSONField(field)
}

func CharFromJSON(data []byte) (Char, error) {
	return charType.FromJSON(data)
}

func CharFromSuiParsedData(content *suiclient.ParsedData) (Char, error) {
	return charType.FromSuiParsedData(content)
}

func FetchChar(ctx context.Context, getter reified.ObjectGetter, id string) (Char, error) {
	return charType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(StringTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase(reified.ASCIIString)
		}),
		reified.ClassOf(CharTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Char](charType)
		}),
	)
}
