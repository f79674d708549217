package witness

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const (
	WitnessTypeName          = addresses.Permissions + "::witness::Witness"
	WitnessGeneratorTypeName = addresses.Permissions + "::witness::WitnessGenerator"
)

type Witness struct {
	reified.TypeParams
	DummyField bool
}

func IsWitness(typ string) bool {
	return movetype.HasTypeName(typ, WitnessTypeName)
}

func WitnessReified(t string) *reified.StructType[Witness] {
	return reified.NewStructType(WitnessTypeName, []string{t}, func(x *Witness) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("dummy_field", reified.Bool, &x.DummyField),
		}
	})
}

func (v Witness) MarshalBCS(e *bcs.Encoder) error {
	return WitnessReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v Witness) ToJSONField() any {
	return WitnessReified(v.TypeArg(0)).ToJSONField(v)
}

func (v Witness) MarshalJSON() ([]byte, error) {
	return WitnessReified(v.TypeArg(0)).ToJSON(v)
}

func WitnessFromBCS(t string, data []byte) (Witness, error) {
	return WitnessReified(t).FromBCS(data)
}

func WitnessFromFields(t string, fields any) (Witness, error) {
	return WitnessReified(t).FromFields(fields)
}

func WitnessFromFieldsWithTypes(t string, item any) (Witness, error) {
	return WitnessReified(t).FromFieldsWithTypes(item)
}

func WitnessFromJSONField(t string, field any) (Witness, error) {
	return WitnessReified(t).FromJSONField(field)
}

func WitnessFromJSON(t string, data []byte) (Witness, error) {
	return WitnessReified(t).FromJSON(data)
}

func WitnessFromSuiParsedData(t string, content *suiclient.ParsedData) (Witness, error) {
	return WitnessReified(t).FromSuiParsedData(content)
}

func FetchWitness(ctx context.Context, getter reified.ObjectGetter, t string, id string) (Witness, error) {
	return WitnessReified(t).Fetch(ctx, getter, id)
}

type WitnessGenerator struct {
	reified.TypeParams
	DummyField bool
}

func IsWitnessGenerator(typ string) bool {
	return movetype.HasTypeName(typ, WitnessGeneratorTypeName)
}

func WitnessGeneratorReified(t string) *reified.StructType[WitnessGenerator] {
	return reified.NewStructType(WitnessGeneratorTypeName, []string{t}, func(x *WitnessGenerator) []reified.FieldSpec {
		return []reified.FieldSpec{
			reified.Field("dummy_field", reified.Bool, &x.DummyField),
		}
	})
}

func (v WitnessGenerator) MarshalBCS(e *bcs.Encoder) error {
	return WitnessGeneratorReified(v.TypeArg(0)).EncodeBCS(e, v)
}

func (v WitnessGenerator) ToJSONField() any {
	return WitnessGeneratorReified(v.TypeArg(0)).ToJSONField(v)
}

func (v WitnessGenerator) MarshalJSON() ([]byte, error) {
	return WitnessGeneratorReified(v.TypeArg(0)).ToJSON(v)
}

func WitnessGeneratorFromBCS(t string, data []byte) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromBCS(data)
}

func WitnessGeneratorFromFields(t string, fields any) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromFields(fields)
}

func WitnessGeneratorFromFieldsWithTypes(t string, item any) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromFieldsWithTypes(item)
}

func WitnessGeneratorFromJSONField(t string, field any) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromJSONField(field)
}

func WitnessGeneratorFromJSON(t string, data []byte) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromJSON(data)
}

func WitnessGeneratorFromSuiParsedData(t string, content *suiclient.ParsedData) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).FromSuiParsedData(content)
}

func FetchWitnessGenerator(ctx context.Context, getter reified.ObjectGetter, t string, id string) (WitnessGenerator, error) {
	return WitnessGeneratorReified(t).Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(WitnessTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[Witness](WitnessReified(args[0].TypeString()))
		}),
		reified.ClassOf(WitnessGeneratorTypeName, []bool{true}, func(args []reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[WitnessGenerator](WitnessGeneratorReified(args[0].TypeString()))
		}),
	)
}
