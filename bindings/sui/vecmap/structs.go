package vecmap

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	EntryTypeName  = addresses.Sui + "::vec_map::Entry"
	VecMapTypeName = addresses.Sui + "::vec_map::VecMap"
)

type Entry[K any, V any] struct {
	reified.TypeParams
	Key   K
	Value V
}

func IsEntry(typ string) bool {
	return movetype.HasTypeName(typ, EntryTypeName)
}

func EntryReified[K any, V any](k reified.Codec[K], v reified.Codec[V]) *reified.StructType[Entry[K, V]] {
	return reified.NewStructType(EntryTypeName, []string{k.TypeString(), v.TypeString()}, func(x *Entry[K, V]) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("key", k, &x.Key),
			reified.Field("value", v, &x.Value),
		}
	})
}

func EntryFromBCS[K any, V any](k reified.Codec[K], v reified.Codec[V], data []byte) (Entry[K, V], error) {
	return EntryReified(k, v).FromBCS(data)
}

func EntryFromFields[K any, V any](k reified.Codec[K], v reified.Codec[V], fields any) (Entry[K, V], error) {
	return EntryReified(k, v).FromFields(fields)
}

func EntryFromFieldsWithTypes[K any, V any](k reified.Codec[K], v reified.Codec[V], item any) (Entry[K, V], error) {
	return EntryReified(k, v).FromFieldsWithTypes(item)
}

func EntryFromJSONField[K any, V any](k reified.Codec[K], v reified.Codec[V], field any) (Entry[K, V], error) {
	return EntryReified(k, v).FromJSONField(field)
}

func EntryFromJSON[K any, V any](k reified.Codec[K], v reified.Codec[V], data []byte) (Entry[K, V], error) {
	return EntryReified(k, v).FromJSON(data)
}

func EntryFromSuiParsedData[K any, V any](k reified.Codec[K], v reified.Codec[V], content *suiclient.ParsedData) (Entry[K, V], error) {
	return EntryReified(k, v).FromSuiParsedData(content)
}

func FetchEntry[K any, V any](ctx context.Context, getter reified.ObjectGetter, k reified.Codec[K], v reified.Codec[V], id string) (Entry[K, V], error) {
	return EntryReified(k, v).Fetch(ctx, getter, id)
}

type VecMap[K any, V any] struct {
	reified.TypeParams
	Contents []Entry[K, V]
}

func IsVecMap(typ string) bool {
	return movetype.HasTypeName(typ, VecMapTypeName)
}

func VecMapReified[K any, V any](k reified.Codec[K], v reified.Codec[V]) *reified.StructType[VecMap[K, V]] {
	return reified.NewStructType(VecMapTypeName, []string{k.TypeString(), v.TypeString()}, func(x *VecMap[K, V]) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("contents", reified.Vector[Entry[K, V]](EntryReified(k, v)), &x.Contents),
		}
	})
}

func VecMapFromBCS[K any, V any](k reified.Codec[K], v reified.Codec[V], data []byte) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromBCS(data)
}

func VecMapFromFields[K any, V any](k reified.Codec[K], v reified.Codec[V], fields any) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromFields(fields)
}

func VecMapFromFieldsWithTypes[K any, V any](k reified.Codec[K], v reified.Codec[V], item any) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromFieldsWithTypes(item)
}

func VecMapFromJSONField[K any, V any](k reified.Codec[K], v reified.Codec[V], field any) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromJSONField(field)
}

func VecMapFromJSON[K any, V any](k reified.Codec[K], v reified.Codec[V], data []byte) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromJSON(data)
}

func VecMapFromSuiParsedData[K any, V any](k reified.Codec[K], v reified.Codec[V], content *suiclient.ParsedData) (VecMap[K, V], error) {
	return VecMapReified(k, v).FromSuiParsedData(content)
}

func FetchVecMap[K any, V any](ctx context.Context, getter reified.ObjectGetter, k reified.Codec[K], v reified.Codec[V], id string) (VecMap[K, V], error) {
	return VecMapReified(k, v).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(EntryTypeName, []bool{false, false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Entry[any, any]](EntryReified(args[0], args[1]))
		}),
		reified.ClassOf(VecMapTypeName, []bool{false, false}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[VecMap[any, any]](VecMapReified(args[0], args[1]))
		}),
	)
}
