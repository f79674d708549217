package table

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const TableTypeName = addresses.Sui + "::table::Table"

type Table struct {
	reified.TypeParams
	ID   movetype.Address
	Size uint64
}

func IsTable(typ string) bool {
	return movetype.HasTypeName(typ, TableTypeName)
}

func TableReified(k string, v string) *reified.StructType[Table] {
	return reified.NewStructType(TableTypeName, []string{k, v}, func(x *Table) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("id", reified.UID, &x.ID),
			reified.Field("size", reified.U64, &x.Size),
		}
	})
}

func (v Table) MarshalBCS(e *bcs.Encoder) error {
	return TableReified(v.TypeArg(0), v.TypeArg(1)).EncodeBCS(e, v)
}

func (v Table) ToJSONField() any {
	return TableReified(v.TypeArg(0), v.TypeArg(1)).ToJSONField(v)
}

func (v Table) MarshalJSON() ([]byte, error) {
	return TableReified(v.TypeArg(0), v.TypeArg(1)).ToJSON(v)
}

func TableFromBCS(k string, v string, data []byte) (Table, error) {
	return TableReified(k, v).FromBCS(data)
}

func TableFromFields(k string, v string, fields any) (Table, error) {
	return TableReified(k, v).FromFields(fields)
}

func TableFromFieldsWithTypes(k string, v string, item any) (Table, error) {
	return TableReified(k, v).FromFieldsWithTypes(item)
}

func TableFromJSONField(k string, v string, field any) (Table, error) {
	return TableReified(k, v).FromJSONField(field)
}

func TableFromJSON(k string, v string, data []byte) (Table, error) {
	return TableReified(k, v).FromJSON(data)
}

func TableFromSuiParsedData(k string, v string, content *suiclient.ParsedData) (Table, error) {
	return TableReified(k, v).FromSuiParsedData(content)
}

func FetchTable(ctx context.Context, getter reified.ObjectGetter, k string, v string, id string) (Table, error) {
	return TableReified(k, v).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(TableTypeName, []bool{true, true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Table](TableReified(args[0].TypeString(), args[1].TypeString()))
		}),
	)
}
