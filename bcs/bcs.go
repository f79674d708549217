package bcs

import "fmt"

// Marshaler is implemented by values that can encode themselves as BCS.
type Marshaler interface {
	MarshalBCS(e *Encoder) error
}

// Unmarshaler is implemented by values that can decode themselves from BCS.
type Unmarshaler interface {
	UnmarshalBCS(d *Decoder) error
}

// Marshal encodes v into a fresh byte slice.
func Marshal(v Marshaler) ([]byte, error) {
	e := NewEncoder()
	if err := v.MarshalBCS(e); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// Unmarshal decodes data into v. The whole input must be consumed.
func Unmarshal(data []byte, v Unmarshaler) error {
	d := NewDecoder(data)
	if err := v.UnmarshalBCS(d); err != nil {
		return err
	}
	return d.Finish()
}

// Finish reports ErrTrailingBytes when input is left over.
func (d *Decoder) Finish() error {
	if d.Remaining() != 0 {
		return fmt.Errorf("%w: %d bytes left", ErrTrailingBytes, d.Remaining())
	}
	return nil
}
