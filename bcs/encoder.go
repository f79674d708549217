// Package bcs implements the Binary Canonical Serialization format used by Sui
// for on-chain values and transaction payloads.
package bcs

import (
	"bytes"
	"encoding/binary"

	"github.com/holiman/uint256"
)

// Encoder appends BCS encoded values to an in-memory buffer.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder creates an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of bytes written.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// WriteBool writes 1 for true and 0 for false.
func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf.WriteByte(1)
		return
	}
	e.buf.WriteByte(0)
}

// WriteU8 writes one byte.
func (e *Encoder) WriteU8(v uint8) {
	e.buf.WriteByte(v)
}

// WriteU16 writes v little endian.
func (e *Encoder) WriteU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	e.buf.Write(b[:])
}

// WriteU32 writes v little endian.
func (e *Encoder) WriteU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	e.buf.Write(b[:])
}

// WriteU64 writes v little endian.
func (e *Encoder) WriteU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	e.buf.Write(b[:])
}

// WriteU128 writes the low 16 bytes of v in little endian order.
func (e *Encoder) WriteU128(v *uint256.Int) error {
	if v.BitLen() > 128 {
		return ErrValueTooLarge
	}
	be := v.Bytes32()
	e.writeReversed(be[16:])
	return nil
}

// WriteU256 writes all 32 bytes of v in little endian order.
func (e *Encoder) WriteU256(v *uint256.Int) {
	be := v.Bytes32()
	e.writeReversed(be[:])
}

func (e *Encoder) writeReversed(be []byte) {
	for i := len(be) - 1; i >= 0; i-- {
		e.buf.WriteByte(be[i])
	}
}

// WriteULEB128 writes v as an unsigned LEB128 value. BCS uses it for
// sequence lengths and enum variant indices.
func (e *Encoder) WriteULEB128(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		e.buf.WriteByte(b)
		if v == 0 {
			break
		}
	}
}

// WriteLength writes a sequence length prefix.
func (e *Encoder) WriteLength(n int) error {
	if n < 0 || n > MaxSequenceLength {
		return ErrSequenceTooLong
	}
	e.WriteULEB128(uint32(n))
	return nil
}

// WriteBytes writes a length prefixed byte sequence.
func (e *Encoder) WriteBytes(data []byte) error {
	if err := e.WriteLength(len(data)); err != nil {
		return err
	}
	e.buf.Write(data)
	return nil
}

// WriteFixedBytes writes data without a length prefix.
func (e *Encoder) WriteFixedBytes(data []byte) {
	e.buf.Write(data)
}

// WriteString writes s as length prefixed UTF-8 bytes.
func (e *Encoder) WriteString(s string) error {
	return e.WriteBytes([]byte(s))
}

// WriteOptionTag writes the presence byte of an Option.
func (e *Encoder) WriteOptionTag(some bool) {
	e.WriteBool(some)
}
