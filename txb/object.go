package txb

import (
	"fmt"

	"github.com/mr-tron/base58"
	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
)

// ObjectInput is anything that can be passed where a move call expects an
// object: an Argument, an ObjectID to be resolved, or a full reference.
type ObjectInput interface {
	objectInput()
}

// ObjectID is an object id whose version and ownership are looked up by
// Resolve.
type ObjectID string

func (ObjectID) objectInput() {}

// Digest is a 32 byte object digest, base58 encoded in JSON.
type Digest [32]byte

// ParseDigest decodes a base58 digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := base58.Decode(s)
	if err != nil {
		return d, fmt.Errorf("%w %q: %v", ErrInvalidDigest, s, err)
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("%w %q: %d bytes", ErrInvalidDigest, s, len(b))
	}
	copy(d[:], b)
	return d, nil
}

// String returns the base58 form of d.
func (d Digest) String() string {
	return base58.Encode(d[:])
}

func (d Digest) MarshalBCS(e *bcs.Encoder) error {
	return e.WriteBytes(d[:])
}

// ObjectRef pins an owned or immutable object at a version.
type ObjectRef struct {
	ObjectID movetype.Address
	Version  uint64
	Digest   Digest
}

func (ObjectRef) objectInput() {}

func (r ObjectRef) MarshalBCS(e *bcs.Encoder) error {
	if err := r.ObjectID.MarshalBCS(e); err != nil {
		return err
	}
	e.WriteU64(r.Version)
	return r.Digest.MarshalBCS(e)
}

// SharedObjectRef is a shared object input.
type SharedObjectRef struct {
	ObjectID             movetype.Address
	InitialSharedVersion uint64
	Mutable              bool
}

func (SharedObjectRef) objectInput() {}

// ReceivingRef is an object sent to another object and received by the call.
type ReceivingRef struct {
	ObjectRef
}

func (ReceivingRef) objectInput() {}

// ObjectArgKind is the BCS variant of an object input.
type ObjectArgKind uint8

const (
	ImmOrOwnedObject ObjectArgKind = iota
	SharedObject
	ReceivingObject
)

// ObjectArg is a resolved object input.
type ObjectArg struct {
	Kind   ObjectArgKind
	Ref    ObjectRef
	Shared SharedObjectRef
}

// ID returns the id of the referenced object.
func (o ObjectArg) ID() movetype.Address {
	if o.Kind == SharedObject {
		return o.Shared.ObjectID
	}
	return o.Ref.ObjectID
}

func (o ObjectArg) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(uint32(o.Kind))
	switch o.Kind {
	case ImmOrOwnedObject, ReceivingObject:
		return o.Ref.MarshalBCS(e)
	case SharedObject:
		if err := o.Shared.ObjectID.MarshalBCS(e); err != nil {
			return err
		}
		e.WriteU64(o.Shared.InitialSharedVersion)
		e.WriteBool(o.Shared.Mutable)
		return nil
	}
	return fmt.Errorf("unknown object arg kind %d", o.Kind)
}
