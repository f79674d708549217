package movetype

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/originbyte/ob-sdk-go/bcs"
	"golang.org/x/crypto/blake2b"
)

// Target is a parsed `package::module::function` move call target.
type Target struct {
	Package  Address
	Module   string
	Function string
}

// ParseTarget parses a move call target such as `0x2::coin::split`.
func ParseTarget(target string) (Target, error) {
	parts := strings.Split(target, "::")
	if len(parts) != 3 {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	pkg, err := ParseAddress(parts[0])
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: %v", ErrInvalidTarget, target, err)
	}
	if !IsValidIdentifier(parts[1]) || !IsValidIdentifier(parts[2]) {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, target)
	}
	return Target{Package: pkg, Module: parts[1], Function: parts[2]}, nil
}

func (t Target) String() string {
	return t.Package.ShortString() + "::" + t.Module + "::" + t.Function
}

// childObjectIDScope is the hashing intent prefix for derived child object ids.
const childObjectIDScope = 0xf0

// DeriveDynamicFieldID computes the object id of the dynamic field stored
// under parent with the given BCS encoded key of type keyType.
func DeriveDynamicFieldID(parent Address, keyType TypeTag, keyBCS []byte) (Address, error) {
	tag, err := bcs.Marshal(keyType)
	if err != nil {
		return Address{}, err
	}
	var size [8]byte
	binary.LittleEndian.PutUint64(size[:], uint64(len(keyBCS)))

	h, err := blake2b.New256(nil)
	if err != nil {
		return Address{}, err
	}
	h.Write([]byte{childObjectIDScope})
	h.Write(parent[:])
	h.Write(size[:])
	h.Write(keyBCS)
	h.Write(tag)

	var id Address
	copy(id[:], h.Sum(nil))
	return id, nil
}
