package bcs

import (
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// MaxSequenceLength bounds every length prefix read or written by this
// package (2^31 - 1, the limit used by the Sui reference implementation).
const MaxSequenceLength = 1<<31 - 1

// Decoder reads BCS values from a byte slice with position tracking.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a Decoder over data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Position returns the number of bytes consumed so far.
func (d *Decoder) Position() int {
	return d.pos
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEOF, n, d.pos, d.Remaining())
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// ReadBool reads one byte, rejecting anything but 0 and 1.
func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x at offset %d", ErrInvalidBool, b, d.pos-1)
	}
}

// ReadU8 reads one byte.
func (d *Decoder) ReadU8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a little endian u16.
func (d *Decoder) ReadU16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32 reads a little endian u32.
func (d *Decoder) ReadU32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64 reads a little endian u64.
func (d *Decoder) ReadU64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadU128 reads a little endian u128.
func (d *Decoder) ReadU128() (uint256.Int, error) {
	return d.readLittleEndian(16)
}

// ReadU256 reads a little endian u256.
func (d *Decoder) ReadU256() (uint256.Int, error) {
	return d.readLittleEndian(32)
}

func (d *Decoder) readLittleEndian(n int) (uint256.Int, error) {
	var v uint256.Int
	le, err := d.take(n)
	if err != nil {
		return v, err
	}
	be := make([]byte, n)
	for i := range le {
		be[n-1-i] = le[i]
	}
	v.SetBytes(be)
	return v, nil
}

// ReadULEB128 reads a canonical unsigned LEB128 value that fits in 32 bits.
func (d *Decoder) ReadULEB128() (uint32, error) {
	var result uint64
	var shift uint
	for {
		b, err := d.ReadU8()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			if shift > 0 && b == 0 {
				return 0, ErrNonCanonical
			}
			if result > uint64(^uint32(0)) {
				return 0, ErrOverflow
			}
			return uint32(result), nil
		}
		shift += 7
		if shift >= 35 {
			return 0, ErrOverflow
		}
	}
}

// ReadLength reads a sequence length prefix.
func (d *Decoder) ReadLength() (int, error) {
	n, err := d.ReadULEB128()
	if err != nil {
		return 0, err
	}
	if n > MaxSequenceLength {
		return 0, ErrSequenceTooLong
	}
	return int(n), nil
}

// ReadBytes reads a length prefixed byte sequence. The result is a copy.
func (d *Decoder) ReadBytes() ([]byte, error) {
	n, err := d.ReadLength()
	if err != nil {
		return nil, err
	}
	return d.ReadFixedBytes(n)
}

// ReadFixedBytes reads exactly n bytes without a length prefix.
func (d *Decoder) ReadFixedBytes(n int) ([]byte, error) {
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadString reads a length prefixed UTF-8 string.
func (d *Decoder) ReadString() (string, error) {
	b, err := d.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadOptionTag reads the presence byte of an Option.
func (d *Decoder) ReadOptionTag() (bool, error) {
	b, err := d.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: 0x%02x", ErrInvalidOptionTag, b)
	}
}
