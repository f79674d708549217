package movetype

import (
	"testing"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeName(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{name: "no args", input: "0x2::sui::SUI", wantName: "0x2::sui::SUI"},
		{name: "primitive", input: "u64", wantName: "u64"},
		{
			name:     "single arg",
			input:    "0x2::coin::Coin<0x2::sui::SUI>",
			wantName: "0x2::coin::Coin",
			wantArgs: []string{"0x2::sui::SUI"},
		},
		{
			name:     "nested args",
			input:    "0x2::vec_map::VecMap<address, vector<0x1::option::Option<u8>>>",
			wantName: "0x2::vec_map::VecMap",
			wantArgs: []string{"address", "vector<0x1::option::Option<u8>>"},
		},
		{
			name:     "compressed separators",
			input:    "0x2::dynamic_field::Field<u64,bool>",
			wantName: "0x2::dynamic_field::Field",
			wantArgs: []string{"u64", "bool"},
		},
		{name: "unclosed", input: "0x2::coin::Coin<0x2::sui::SUI", wantErr: true},
		{name: "unopened", input: "0x2::coin::Coin>", wantErr: true},
		{name: "unbalanced inner", input: "0x2::a::B<c<d>", wantErr: true},
		{name: "trailing text", input: "0x2::a::B<u8>x", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotName, gotArgs, err := ParseTypeName(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnclosedGeneric)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, gotName)
			assert.Equal(t, tc.wantArgs, gotArgs)
		})
	}
}

func TestCompressType(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "u8", want: "u8"},
		{input: "vector<u8>", want: "vector<u8>"},
		{
			input: "0x0000000000000000000000000000000000000000000000000000000000000002::coin::Coin<0x0000000000000000000000000000000000000000000000000000000000000002::sui::SUI>",
			want:  "0x2::coin::Coin<0x2::sui::SUI>",
		},
		{
			input: "0x2::vec_map::VecMap<address, vector<0x01::string::String>>",
			want:  "0x2::vec_map::VecMap<address,vector<0x1::string::String>>",
		},
		{input: "0x0::m::S", want: "0x0::m::S"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := CompressType(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := CompressType("vector<u8, u16>")
	assert.ErrorIs(t, err, ErrInvalidTypeTag)
}

func TestSameTypeAndHasTypeName(t *testing.T) {
	assert.True(t, SameType("0x02::coin::Coin<0x2::sui::SUI>", "0x2::coin::Coin<0x0002::sui::SUI>"))
	assert.False(t, SameType("0x2::coin::Coin<0x2::sui::SUI>", "0x2::coin::Coin<u8>"))
	assert.False(t, SameType("0x2::coin::Coin<", "0x2::coin::Coin<"))

	assert.True(t, HasTypeName("0x0002::balance::Balance<0x2::sui::SUI>", BalanceTypeName))
	assert.False(t, HasTypeName("0x2::balance::Supply<0x2::sui::SUI>", BalanceTypeName))
}

func TestComposeType(t *testing.T) {
	assert.Equal(t, "0x2::sui::SUI", ComposeType("0x2::sui::SUI"))
	assert.Equal(t, "0x2::vec_map::VecMap<u8, bool>", ComposeType("0x2::vec_map::VecMap", "u8", "bool"))
}

func TestIsPure(t *testing.T) {
	cases := []struct {
		typ  string
		want bool
	}{
		{typ: "bool", want: true},
		{typ: "u256", want: true},
		{typ: "address", want: true},
		{typ: "signer", want: true},
		{typ: "0x1::string::String", want: true},
		{typ: "0x1::ascii::String", want: true},
		{typ: "0x2::object::ID", want: true},
		{typ: "0x0000000000000000000000000000000000000000000000000000000000000002::object::ID", want: true},
		{typ: "vector<u8>", want: true},
		{typ: "vector<vector<0x1::string::String>>", want: true},
		{typ: "0x1::option::Option<u64>", want: true},
		{typ: "0x1::option::Option<0x2::object::UID>", want: false},
		{typ: "vector<0x2::coin::Coin<0x2::sui::SUI>>", want: false},
		{typ: "0x2::object::UID", want: false},
		{typ: "0x2::coin::Coin<0x2::sui::SUI>", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPure(tc.typ))
		})
	}
}

func TestParseAddress(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "short", input: "0x2", want: "0x0000000000000000000000000000000000000000000000000000000000000002"},
		{name: "no prefix", input: "abc", want: "0x0000000000000000000000000000000000000000000000000000000000000abc"},
		{
			name:  "full",
			input: "0xc74531639fadfb02d30f05f37de4cf1e1149ed8d23658edd089004830068180b",
			want:  "0xc74531639fadfb02d30f05f37de4cf1e1149ed8d23658edd089004830068180b",
		},
		{name: "empty", input: "0x", wantErr: true},
		{name: "not hex", input: "0xzz", wantErr: true},
		{name: "too long", input: "0x" + "11111111111111111111111111111111111111111111111111111111111111111", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAddress(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	assert.Equal(t, "0x2", MustParseAddress("0x02").ShortString())
	assert.Equal(t, "0x0", Address{}.ShortString())
	assert.True(t, Address{}.IsZero())
}

func TestAddressText(t *testing.T) {
	a := MustParseAddress("0x2")
	text, err := a.MarshalText()
	require.NoError(t, err)

	var b Address
	require.NoError(t, b.UnmarshalText(text))
	assert.Equal(t, a, b)
	assert.Error(t, b.UnmarshalText([]byte("0xnope")))
}

func TestParseTypeTag(t *testing.T) {
	tag, err := ParseTypeTag("0x2::coin::Coin<0x2::sui::SUI>")
	require.NoError(t, err)
	assert.Equal(t, TagStruct, tag.Kind)
	assert.Equal(t, "coin", tag.Struct.Module)
	assert.Equal(t, "Coin", tag.Struct.Name)
	require.Len(t, tag.Struct.TypeParams, 1)
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", tag.String())

	vec, err := ParseTypeTag("vector<vector<u8>>")
	require.NoError(t, err)
	assert.Equal(t, TagVector, vec.Kind)
	assert.Equal(t, TagU8, vec.Vector.Vector.Kind)
	assert.Equal(t, "vector<vector<u8>>", vec.String())

	for _, bad := range []string{"u8<u8>", "vector", "0x2::coin", "0x2::1coin::Coin", "0xzz::a::B"} {
		_, err := ParseTypeTag(bad)
		assert.Error(t, err, bad)
	}
}

func TestTypeTagBCS(t *testing.T) {
	cases := []struct {
		typ  string
		want []byte
	}{
		{typ: "bool", want: []byte{0x00}},
		{typ: "u64", want: []byte{0x02}},
		{typ: "u16", want: []byte{0x08}},
		{typ: "u256", want: []byte{0x0a}},
		{typ: "vector<u8>", want: []byte{0x06, 0x01}},
	}

	for _, tc := range cases {
		t.Run(tc.typ, func(t *testing.T) {
			tag, err := ParseTypeTag(tc.typ)
			require.NoError(t, err)
			got, err := bcs.Marshal(tag)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	tag, err := ParseTypeTag("0x2::coin::Coin<0x2::sui::SUI>")
	require.NoError(t, err)
	data, err := bcs.Marshal(tag)
	require.NoError(t, err)
	assert.Equal(t, byte(TagStruct), data[0])
	assert.Equal(t, byte(0x02), data[32])
	assert.Equal(t, []byte{0x04, 'c', 'o', 'i', 'n'}, data[33:38])

	var decoded TypeTag
	require.NoError(t, bcs.Unmarshal(data, &decoded))
	assert.Equal(t, tag.String(), decoded.String())

	assert.ErrorIs(t, bcs.Unmarshal([]byte{0x0b}, &decoded), ErrInvalidTypeTag)
}

func TestStructTagHugeTypeParamCount(t *testing.T) {
	data := []byte{byte(TagStruct)}
	data = append(data, make([]byte, AddressLength)...)
	data = append(data, 1, 'a', 1, 'B')
	// 2^31-1 type parameters, none of them present
	data = append(data, 0xff, 0xff, 0xff, 0xff, 0x07)

	var tag TypeTag
	err := bcs.Unmarshal(data, &tag)
	require.Error(t, err)
	assert.ErrorIs(t, err, bcs.ErrUnexpectedEOF)
}

func TestParseTarget(t *testing.T) {
	target, err := ParseTarget("0x2::coin::split")
	require.NoError(t, err)
	assert.Equal(t, MustParseAddress("0x2"), target.Package)
	assert.Equal(t, "coin", target.Module)
	assert.Equal(t, "split", target.Function)
	assert.Equal(t, "0x2::coin::split", target.String())

	_, err = ParseTarget("0x2::coin")
	assert.ErrorIs(t, err, ErrInvalidTarget)
	_, err = ParseTarget("0x2::coin::9split")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestDeriveDynamicFieldID(t *testing.T) {
	parent := MustParseAddress("0x5")
	keyType, err := ParseTypeTag("u64")
	require.NoError(t, err)

	a, err := DeriveDynamicFieldID(parent, keyType, []byte{1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	b, err := DeriveDynamicFieldID(parent, keyType, []byte{1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	c, err := DeriveDynamicFieldID(parent, keyType, []byte{2, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.False(t, a.IsZero())
}
