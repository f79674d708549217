package displayinfo

import (
	"context"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
)

const DisplayInfoTypeName = addresses.NftProtocol + "::display_info::DisplayInfo"

type DisplayInfo struct {
	Name        string
	Description string
}

var displayInfoType = reified.NewStructType(DisplayInfoTypeName, nil, func(x *DisplayInfo) []reified.FieldSpec {
	return []reified.FieldSpec{
		reified.Field("name", reified.String, &x.Name),
		reified.Field("description", reified.String, &x.Description),
	}
})

func IsDisplayInfo(typ string) bool {
	return displayInfoType.IsType(typ)
}

func DisplayInfoReified() *reified.StructType[DisplayInfo] {
	return displayInfoType
}

func (v DisplayInfo) MarshalBCS(e *bcs.Encoder) error {
	return displayInfoType.EncodeBCS(e, v)
}

func (v DisplayInfo) ToJSONField() any {
	return displayInfoType.ToJSONField(v)
}

func (v DisplayInfo) MarshalJSON() ([]byte, error) {
	return displayInfoType.ToJSON(v)
}

func DisplayInfoFromBCS(data []byte) (DisplayInfo, error) {
	return displayInfoType.FromBCS(data)
}

func DisplayInfoFromFields(fields any) (DisplayInfo, error) {
	return displayInfoType.FromFields(fields)
}

func DisplayInfoFromFieldsWithTypes(item any) (DisplayInfo, error) {
	return displayInfoType.FromFieldsWithTypes(item)
}

func DisplayInfoFromJSONField(field any) (DisplayInfo, error) {
	return displayInfoType.FromJSONField(field)
}

func DisplayInfoFromJSON(data []byte) (DisplayInfo, error) {
	return displayInfoType.FromJSON(data)
}

func DisplayInfoFromSuiParsedData(content *suiclient.ParsedData) (DisplayInfo, error) {
	return displayInfoType.FromSuiParsedData(content)
}

func FetchDisplayInfo(ctx context.Context, getter reified.ObjectGetter, id string) (DisplayInfo, error) {
	return displayInfoType.Fetch(ctx, getter, id)
}

// RegisterClasses adds the structs of this module to l.
func RegisterClasses(l *reified.Loader) {
	l.Register(
		reified.ClassOf(DisplayInfoTypeName, nil, func([]reified.Codec[any]) reified.Codec[any] {
			return reified.Erase[DisplayInfo](displayInfoType)
		}),
	)
}
