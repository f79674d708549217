package vecset

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const VecSetTypeName = addresses.Sui + "::vec_set::VecSet"

type VecSet[K any] struct {
	reified.TypeParams
	Contents []K
}

func IsVecSet(typ string) bool {
	return movetype.HasTypeName(typ, VecSetTypeName)
}

func VecSetReified[K any](k reified.Codec[K]) *reified.StructType[VecSet[K]] {
	return reified.NewStructType(VecSetTypeName, []string{k.TypeString()}, func(x *VecSet[K]) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("contents", reified.Vector(k), &x.Contents),
		}
	})
}

func VecSetFromBCS[K any](k reified.Codec[K], data []byte) (VecSet[K], error) {
	return VecSetReified(k).FromBCS(data)
}

func VecSetFromFields[K any](k reified.Codec[K], fields any) (VecSet[K], error) {
	return VecSetReified(k).FromFields(fields)
}

func VecSetFromFieldsWithTypes[K any](k reified.Codec[K], item any) (VecSet[K], error) {
	return VecSetReified(k).FromFieldsWithTypes(item)
}

func VecSetFromJSONField[K any](k reified.Codec[K], field any) (VecSet[K], error) {
	return VecSetReified(k).FromJSONField(field)
}

func VecSetFromJSON[K any](k reified.Codec[K], data []byte) (VecSet[K], error) {
	return VecSetReified(k).FromJSON(data)
}

func VecSetFromSuiParsedData[K any](k reified.Codec[K], content *suiclient.ParsedData) (VecSet[K], error) {
	return VecSetReified(k).FromSuiParsedData(content)
}

func FetchVecSet[K any](ctx context.Context, getter reified.ObjectGetter, k reified.Codec[K], id string) (VecSet[K], error) {
	return VecSetReified(k).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(VecSetTypeName, []bool{false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[VecSet[any]](VecSetReified(args[0]))
		}),
	)
}
