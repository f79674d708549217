package bcs

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULEB128(t *testing.T) {
	cases := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{name: "zero", value: 0, want: []byte{0x00}},
		{name: "one byte max", value: 127, want: []byte{0x7f}},
		{name: "two bytes", value: 128, want: []byte{0x80, 0x01}},
		{name: "16384", value: 16384, want: []byte{0x80, 0x80, 0x01}},
		{name: "u32 max", value: 4294967295, want: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEncoder()
			e.WriteULEB128(tc.value)
			assert.Equal(t, tc.want, e.Bytes())

			got, err := NewDecoder(tc.want).ReadULEB128()
			require.NoError(t, err)
			assert.Equal(t, tc.value, got)
		})
	}
}

func TestULEB128Errors(t *testing.T) {
	cases := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "non canonical", input: []byte{0x80, 0x00}, wantErr: ErrNonCanonical},
		{name: "above u32", input: []byte{0xff, 0xff, 0xff, 0xff, 0x1f}, wantErr: ErrOverflow},
		{name: "too many bytes", input: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}, wantErr: ErrOverflow},
		{name: "truncated", input: []byte{0x80}, wantErr: ErrUnexpectedEOF},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDecoder(tc.input).ReadULEB128()
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestIntegersLittleEndian(t *testing.T) {
	e := NewEncoder()
	e.WriteU8(0x01)
	e.WriteU16(0x0203)
	e.WriteU32(0x04050607)
	e.WriteU64(0x08090a0b0c0d0e0f)
	assert.Equal(t, []byte{
		0x01,
		0x03, 0x02,
		0x07, 0x06, 0x05, 0x04,
		0x0f, 0x0e, 0x0d, 0x0c, 0x0b, 0x0a, 0x09, 0x08,
	}, e.Bytes())

	d := NewDecoder(e.Bytes())
	u8, err := d.ReadU8()
	require.NoError(t, err)
	u16, err := d.ReadU16()
	require.NoError(t, err)
	u32, err := d.ReadU32()
	require.NoError(t, err)
	u64, err := d.ReadU64()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), u8)
	assert.Equal(t, uint16(0x0203), u16)
	assert.Equal(t, uint32(0x04050607), u32)
	assert.Equal(t, uint64(0x08090a0b0c0d0e0f), u64)
	assert.NoError(t, d.Finish())
}

func TestU128AndU256(t *testing.T) {
	v := uint256.NewInt(1)
	v.Lsh(v, 64)

	e := NewEncoder()
	require.NoError(t, e.WriteU128(v))
	want := make([]byte, 16)
	want[8] = 1
	assert.Equal(t, want, e.Bytes())

	got, err := NewDecoder(e.Bytes()).ReadU128()
	require.NoError(t, err)
	assert.True(t, got.Eq(v))

	big := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	assert.ErrorIs(t, NewEncoder().WriteU128(big), ErrValueTooLarge)

	e = NewEncoder()
	e.WriteU256(big)
	assert.Len(t, e.Bytes(), 32)
	assert.Equal(t, byte(1), e.Bytes()[25])
	got, err = NewDecoder(e.Bytes()).ReadU256()
	require.NoError(t, err)
	assert.True(t, got.Eq(big))
}

func TestBoolAndOption(t *testing.T) {
	_, err := NewDecoder([]byte{0x02}).ReadBool()
	assert.ErrorIs(t, err, ErrInvalidBool)

	_, err = NewDecoder([]byte{0x02}).ReadOptionTag()
	assert.ErrorIs(t, err, ErrInvalidOptionTag)

	some, err := NewDecoder([]byte{0x01}).ReadOptionTag()
	require.NoError(t, err)
	assert.True(t, some)
}

func TestStringsAndBytes(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.WriteString("sui"))
	require.NoError(t, e.WriteBytes([]byte{}))
	e.WriteFixedBytes([]byte{0xaa, 0xbb})
	assert.Equal(t, []byte{0x03, 's', 'u', 'i', 0x00, 0xaa, 0xbb}, e.Bytes())

	d := NewDecoder(e.Bytes())
	s, err := d.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "sui", s)
	b, err := d.ReadBytes()
	require.NoError(t, err)
	assert.Empty(t, b)
	fixed, err := d.ReadFixedBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xaa, 0xbb}, fixed)

	_, err = NewDecoder([]byte{0x05, 'a'}).ReadBytes()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

type pair struct {
	A uint8
	B uint64
}

func (p *pair) MarshalBCS(e *Encoder) error {
	e.WriteU8(p.A)
	e.WriteU64(p.B)
	return nil
}

func (p *pair) UnmarshalBCS(d *Decoder) error {
	var err error
	if p.A, err = d.ReadU8(); err != nil {
		return err
	}
	p.B, err = d.ReadU64()
	return err
}

func TestMarshalUnmarshal(t *testing.T) {
	in := &pair{A: 7, B: 42}
	data, err := Marshal(in)
	require.NoError(t, err)

	var out pair
	require.NoError(t, Unmarshal(data, &out))
	assert.Equal(t, *in, out)

	err = Unmarshal(append(data, 0x00), &out)
	assert.ErrorIs(t, err, ErrTrailingBytes)
}
