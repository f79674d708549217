package movetype

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/originbyte/ob-sdk-go/bcs"
)

// AddressLength is the width of Sui addresses and object ids.
const AddressLength = 32

// Address is a Sui account address or object id.
type Address [AddressLength]byte

// ParseAddress accepts short (0x2) and full width hex, with or without the
// 0x prefix, and left-pads it to 32 bytes.
func ParseAddress(s string) (Address, error) {
	var a Address
	h := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if h == "" || len(h) > 2*AddressLength {
		return a, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	if len(h)%2 == 1 {
		h = "0" + h
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return a, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	copy(a[AddressLength-len(b):], b)
	return a, nil
}

// MustParseAddress is ParseAddress for constants known to be valid.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the full width 0x-prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns the address with leading zeros removed (0x2).
func (a Address) ShortString() string {
	return CompressAddress(a.String())
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) MarshalBCS(e *bcs.Encoder) error {
	e.WriteFixedBytes(a[:])
	return nil
}

func (a *Address) UnmarshalBCS(d *bcs.Decoder) error {
	b, err := d.ReadFixedBytes(AddressLength)
	if err != nil {
		return err
	}
	copy(a[:], b)
	return nil
}

// CompressAddress removes the 0x prefix and leading zeros: 0x0002 -> 0x2.
func CompressAddress(addr string) string {
	stripped := strings.TrimPrefix(addr, "0x")
	trimmed := strings.TrimLeft(stripped, "0")
	if trimmed == "" {
		return "0x0"
	}
	return "0x" + trimmed
}
