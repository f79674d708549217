package sizedvec

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const SizedVecTypeName = addresses.Utils + "::sized_vec::SizedVec"

type SizedVec[Element any] struct {
	reified.TypeParams
	Capacity uint64
	Vec      []Element
}

func IsSizedVec(typ string) bool {
	return movetype.HasTypeName(typ, SizedVecTypeName)
}

func SizedVecReified[Element any](element reified.Codec[Element]) *reified.StructType[SizedVec[Element]] {
	return reified.NewStructType(SizedVecTypeName, []string{element.TypeString()}, func(x *SizedVec[Element]) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("capacity", reified.U64, &x.Capacity),
			reified.Field("vec", reified.Vector(element), &x.Vec),
		}
	})
}

func SizedVecFromBCS[Element any](element reified.Codec[Element], data []byte) (SizedVec[Element], error) {
	return SizedVecReified(element).FromBCS(data)
}

func SizedVecFromFields[Element any](element reified.Codec[Element], fields any) (SizedVec[Element], error) {
	return SizedVecReified(element).FromFields(fields)
}

func SizedVecFromFieldsWithTypes[Element any](element reified.Codec[Element], item any) (SizedVec[Element], error) {
	return SizedVecReified(element).FromFieldsWithTypes(item)
}

func SizedVecFromJSONField[Element any](element reified.Codec[Element], field any) (SizedVec[Element], error) {
	return SizedVecReified(element).FromJSONField(field)
}

func SizedVecFromJSON[Element any](element reified.Codec[Element], data []byte) (SizedVec[Element], error) {
	return SizedVecReified(element).FromJSON(data)
}

func SizedVecFromSuiParsedData[Element any](element reified.Codec[Element], content *suiclient.ParsedData) (SizedVec[Element], error) {
	return SizedVecReified(element).FromSuiParsedData(content)
}

func FetchSizedVec[Element any](ctx context.Context, getter reified.ObjectGetter, element reified.Codec[Element], id string) (SizedVec[Element], error) {
	return SizedVecReified(element).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(SizedVecTypeName, []bool{false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[SizedVec[any]](SizedVecReified(args[0]))
		}),
	)
}
