package reified

import (
	"fmt"
	"sort"
	"sync"

	"github.com/originbyte/ob-sdk-go/movetype"
)

// Class describes a generic struct so the Loader can instantiate it from a
// type string.
type Class struct {
	TypeName string
	// Phantom flags each type parameter; its length is the arity.
	Phantom []bool
	Build   func(typeArgs []Codec[any]) Codec[any]
}

// ClassOf is a convenience constructor for Class.
func ClassOf(typeName string, phantom []bool, build func(typeArgs []Codec[any]) Codec[any]) Class {
	return Class{TypeName: typeName, Phantom: phantom, Build: build}
}

// Loader resolves type strings to codecs for primitives, vectors and
// registered structs.
type Loader struct {
	mu      sync.RWMutex
	classes map[string]Class
}

func NewLoader() *Loader {
	return &Loader{classes: make(map[string]Class)}
}

// Register adds classes, replacing earlier ones with the same type name.
func (l *Loader) Register(classes ...Class) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range classes {
		name, err := movetype.CompressType(c.TypeName)
		if err != nil {
			name = c.TypeName
		}
		l.classes[name] = c
	}
}

// TypeNames lists the registered struct types.
func (l *Loader) TypeNames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.classes))
	for name := range l.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var primitives = map[string]Codec[any]{
	"bool":    Erase(Bool),
	"u8":      Erase(U8),
	"u16":     Erase(U16),
	"u32":     Erase(U32),
	"u64":     Erase(U64),
	"u128":    Erase(U128),
	"u256":    Erase(U256),
	"address": Erase(Address),
}

// Reified returns the codec of typ. Phantom type arguments do not need to be
// registered.
func (l *Loader) Reified(typ string) (Codec[any], error) {
	typeName, typeArgs, err := movetype.ParseTypeName(typ)
	if err != nil {
		return nil, err
	}
	if c, ok := primitives[typeName]; ok {
		return c, nil
	}
	if typeName == "vector" {
		if len(typeArgs) != 1 {
			return nil, fmt.Errorf("%w: vector expects 1 type argument, but got %d", ErrTypeArgCount, len(typeArgs))
		}
		elem, err := l.Reified(typeArgs[0])
		if err != nil {
			return nil, err
		}
		return Erase(Vector(elem)), nil
	}

	if typeName, err = movetype.CompressType(typeName); err != nil {
		return nil, err
	}
	l.mu.RLock()
	cls, ok := l.classes[typeName]
	l.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownType, typeName)
	}
	if len(cls.Phantom) != len(typeArgs) {
		return nil, fmt.Errorf("%w: type %s expects %d type arguments, but got %d",
			ErrTypeArgCount, typeName, len(cls.Phantom), len(typeArgs))
	}
	args := make([]Codec[any], len(typeArgs))
	for i, arg := range typeArgs {
		if cls.Phantom[i] {
			compressed, err := movetype.CompressType(arg)
			if err != nil {
				return nil, err
			}
			args[i] = Phantom(compressed)
			continue
		}
		if args[i], err = l.Reified(arg); err != nil {
			return nil, err
		}
	}
	return cls.Build(args), nil
}
