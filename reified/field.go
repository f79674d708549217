package reified

import (
	"fmt"
	"strings"

	"github.com/originbyte/ob-sdk-go/bcs"
)

// FieldSpec binds one Move struct field to a Go struct field.
type FieldSpec interface {
	// Key is the Move field name, e.g. rate_bps.
	Key() string
	// JSONKey is the camel case name used in JSON, e.g. rateBps.
	JSONKey() string

	encode(e *bcs.Encoder) error
	decode(d *bcs.Decoder) error
	fromFields(v any) error
	fromFieldsWithTypes(v any) error
	fromJSONField(v any) error
	toJSONField() any
}

type field[T any] struct {
	key     string
	jsonKey string
	codec   Codec[T]
	ptr     *T
}

// Field binds the Move field key, encoded by codec, to *ptr.
func Field[T any](key string, codec Codec[T], ptr *T) FieldSpec {
	return field[T]{key: key, jsonKey: camelCase(key), codec: codec, ptr: ptr}
}

func (f field[T]) Key() string     { return f.key }
func (f field[T]) JSONKey() string { return f.jsonKey }

func (f field[T]) encode(e *bcs.Encoder) error {
	return f.codec.EncodeBCS(e, *f.ptr)
}

func (f field[T]) decode(d *bcs.Decoder) error {
	return f.set(f.codec.DecodeBCS(d))
}

func (f field[T]) fromFields(v any) error {
	return f.set(f.codec.FromFields(v))
}

func (f field[T]) fromFieldsWithTypes(v any) error {
	return f.set(f.codec.FromFieldsWithTypes(v))
}

func (f field[T]) fromJSONField(v any) error {
	return f.set(f.codec.FromJSONField(v))
}

func (f field[T]) toJSONField() any {
	return f.codec.ToJSONField(*f.ptr)
}

func (f field[T]) set(v T, err error) error {
	if err != nil {
		return err
	}
	*f.ptr = v
	return nil
}

// camelCase turns snake_case Move field names into JSON keys.
func camelCase(key string) string {
	parts := strings.Split(key, "_")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// TypeParams is embedded by generic struct wrappers to remember the type
// arguments a value was decoded with.
type TypeParams struct {
	TypeArgs []string `json:"-"`
}

func (p *TypeParams) setTypeArgs(args []string) {
	p.TypeArgs = args
}

// TypeArg returns the i-th type argument, or "" when it is unknown.
func (p TypeParams) TypeArg(i int) string {
	if i < 0 || i >= len(p.TypeArgs) {
		return ""
	}
	return p.TypeArgs[i]
}

type typeArgsSetter interface {
	setTypeArgs(args []string)
}

func fieldError(typeName string, f FieldSpec, err error) error {
	return fmt.Errorf("%s.%s: %w", shortName(typeName), f.Key(), err)
}

// shortName returns the struct name of a `0x..::module::Name` type.
func shortName(typeName string) string {
	if i := strings.LastIndex(typeName, "::"); i >= 0 {
		return typeName[i+2:]
	}
	return typeName
}
