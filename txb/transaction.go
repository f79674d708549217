// Package txb builds programmable transaction blocks: a list of inputs and
// the commands that consume them.
package txb

import (
	"fmt"
	"math"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/movetype"
)

// Input is one transaction input: pure BCS bytes or an object. Object inputs
// added by id are unresolved until Resolve fills in Object.
type Input struct {
	Pure     []byte
	Object   *ObjectArg
	ObjectID movetype.Address
	IsObject bool
}

// Resolved reports whether the input can be serialized.
func (in Input) Resolved() bool {
	return !in.IsObject || in.Object != nil
}

func (in Input) MarshalBCS(e *bcs.Encoder) error {
	if !in.IsObject {
		e.WriteULEB128(0)
		return e.WriteBytes(in.Pure)
	}
	if in.Object == nil {
		return fmt.Errorf("%w %s", ErrUnresolvedObject, in.ObjectID)
	}
	e.WriteULEB128(1)
	return in.Object.MarshalBCS(e)
}

// Command is one step of a programmable transaction.
type Command interface {
	bcs.Marshaler
	Kind() string
}

// MoveCall calls a move function with type and value arguments.
type MoveCall struct {
	Target        movetype.Target
	TypeArguments []movetype.TypeTag
	Arguments     []Argument
}

func (MoveCall) Kind() string { return "MoveCall" }

func (c MoveCall) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(0)
	if err := c.Target.Package.MarshalBCS(e); err != nil {
		return err
	}
	if err := e.WriteString(c.Target.Module); err != nil {
		return err
	}
	if err := e.WriteString(c.Target.Function); err != nil {
		return err
	}
	if err := e.WriteLength(len(c.TypeArguments)); err != nil {
		return err
	}
	for _, t := range c.TypeArguments {
		if err := t.MarshalBCS(e); err != nil {
			return err
		}
	}
	return writeArguments(e, c.Arguments)
}

// TransferObjects sends objects to the address argument.
type TransferObjects struct {
	Objects []Argument
	Address Argument
}

func (TransferObjects) Kind() string { return "TransferObjects" }

func (c TransferObjects) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(1)
	if err := writeArguments(e, c.Objects); err != nil {
		return err
	}
	return c.Address.MarshalBCS(e)
}

// SplitCoins splits one coin into coins of the given amounts.
type SplitCoins struct {
	Coin    Argument
	Amounts []Argument
}

func (SplitCoins) Kind() string { return "SplitCoins" }

func (c SplitCoins) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(2)
	if err := c.Coin.MarshalBCS(e); err != nil {
		return err
	}
	return writeArguments(e, c.Amounts)
}

// MergeCoins merges sources into destination.
type MergeCoins struct {
	Destination Argument
	Sources     []Argument
}

func (MergeCoins) Kind() string { return "MergeCoins" }

func (c MergeCoins) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(3)
	if err := c.Destination.MarshalBCS(e); err != nil {
		return err
	}
	return writeArguments(e, c.Sources)
}

// MakeMoveVec builds a vector; Type is nil when it is inferred.
type MakeMoveVec struct {
	Type     *movetype.TypeTag
	Elements []Argument
}

func (MakeMoveVec) Kind() string { return "MakeMoveVec" }

func (c MakeMoveVec) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(5)
	e.WriteOptionTag(c.Type != nil)
	if c.Type != nil {
		if err := c.Type.MarshalBCS(e); err != nil {
			return err
		}
	}
	return writeArguments(e, c.Elements)
}

// Transaction accumulates inputs and commands. It is not safe for concurrent
// use.
type Transaction struct {
	inputs   []Input
	commands []Command
	objects  map[movetype.Address]uint16
}

// New returns an empty transaction.
func New() *Transaction {
	return &Transaction{objects: make(map[movetype.Address]uint16)}
}

// Inputs returns the deduplicated inputs in call order.
func (tx *Transaction) Inputs() []Input { return tx.inputs }

// Commands returns the commands in call order.
func (tx *Transaction) Commands() []Command { return tx.commands }

// Gas returns the gas coin argument.
func (tx *Transaction) Gas() Argument {
	return GasCoin()
}

func (tx *Transaction) addInput(in Input) (Argument, error) {
	if len(tx.inputs) >= math.MaxUint16 {
		return Argument{}, ErrTooManyInputs
	}
	tx.inputs = append(tx.inputs, in)
	return Argument{Kind: KindInput, Index: uint16(len(tx.inputs) - 1)}, nil
}

func (tx *Transaction) addCommand(c Command) (Argument, error) {
	if len(tx.commands) >= math.MaxUint16 {
		return Argument{}, fmt.Errorf("too many commands")
	}
	tx.commands = append(tx.commands, c)
	return Argument{Kind: KindResult, Index: uint16(len(tx.commands) - 1)}, nil
}

// Pure adds BCS bytes as an input.
func (tx *Transaction) Pure(b []byte) (Argument, error) {
	return tx.addInput(Input{Pure: b})
}

// Object adds an object input. The same object id is only added once; a
// reference given later replaces an unresolved id.
func (tx *Transaction) Object(obj ObjectInput) (Argument, error) {
	var (
		id  movetype.Address
		arg *ObjectArg
	)
	switch o := obj.(type) {
	case Argument:
		return o, nil
	case ObjectID:
		a, err := movetype.ParseAddress(string(o))
		if err != nil {
			return Argument{}, err
		}
		id = a
	case ObjectRef:
		id, arg = o.ObjectID, &ObjectArg{Kind: ImmOrOwnedObject, Ref: o}
	case SharedObjectRef:
		id, arg = o.ObjectID, &ObjectArg{Kind: SharedObject, Shared: o}
	case ReceivingRef:
		id, arg = o.ObjectID, &ObjectArg{Kind: ReceivingObject, Ref: o.ObjectRef}
	default:
		return Argument{}, fmt.Errorf("%w: %T", ErrNotObject, obj)
	}

	if idx, ok := tx.objects[id]; ok {
		if arg != nil && tx.inputs[idx].Object == nil {
			tx.inputs[idx].Object = arg
		}
		return Argument{Kind: KindInput, Index: idx}, nil
	}
	a, err := tx.addInput(Input{Object: arg, ObjectID: id, IsObject: true})
	if err != nil {
		return Argument{}, err
	}
	tx.objects[id] = a.Index
	return a, nil
}

// isObjectArgument reports whether a refers to an object rather than a pure
// input.
func (tx *Transaction) isObjectArgument(a Argument) bool {
	if a.Kind != KindInput {
		return true
	}
	return int(a.Index) < len(tx.inputs) && tx.inputs[a.Index].IsObject
}

// MoveCall appends a call to target, `package::module::function`, building
// args in order.
func (tx *Transaction) MoveCall(target string, typeArgs []string, args ...Arg) (Argument, error) {
	t, err := movetype.ParseTarget(target)
	if err != nil {
		return Argument{}, err
	}
	tags := make([]movetype.TypeTag, len(typeArgs))
	for i, ta := range typeArgs {
		if tags[i], err = movetype.ParseTypeTag(ta); err != nil {
			return Argument{}, fmt.Errorf("%s: type argument %d: %w", target, i, err)
		}
	}
	built := make([]Argument, len(args))
	for i, a := range args {
		if built[i], err = a.build(tx); err != nil {
			return Argument{}, fmt.Errorf("%s: argument %d: %w", target, i, err)
		}
	}
	return tx.addCommand(MoveCall{Target: t, TypeArguments: tags, Arguments: built})
}

// MakeMoveVec builds a vector from elements. typ may be empty when it can be
// inferred from a non-empty elements list.
func (tx *Transaction) MakeMoveVec(typ string, elements ...ObjectInput) (Argument, error) {
	cmd := MakeMoveVec{Elements: make([]Argument, len(elements))}
	if typ != "" {
		tag, err := movetype.ParseTypeTag(typ)
		if err != nil {
			return Argument{}, err
		}
		cmd.Type = &tag
	}
	for i, el := range elements {
		a, err := tx.Object(el)
		if err != nil {
			return Argument{}, err
		}
		cmd.Elements[i] = a
	}
	return tx.addCommand(cmd)
}

// TransferObjects sends objects to recipient.
func (tx *Transaction) TransferObjects(objects []ObjectInput, recipient movetype.Address) (Argument, error) {
	cmd := TransferObjects{Objects: make([]Argument, len(objects))}
	for i, o := range objects {
		a, err := tx.Object(o)
		if err != nil {
			return Argument{}, err
		}
		cmd.Objects[i] = a
	}
	addr, err := tx.Pure(recipient[:])
	if err != nil {
		return Argument{}, err
	}
	cmd.Address = addr
	return tx.addCommand(cmd)
}

// SplitCoins splits amounts off coin. The result has one coin per amount.
func (tx *Transaction) SplitCoins(coin ObjectInput, amounts ...uint64) (Argument, error) {
	c, err := tx.Object(coin)
	if err != nil {
		return Argument{}, err
	}
	cmd := SplitCoins{Coin: c, Amounts: make([]Argument, len(amounts))}
	for i, amount := range amounts {
		e := bcs.NewEncoder()
		e.WriteU64(amount)
		if cmd.Amounts[i], err = tx.Pure(e.Bytes()); err != nil {
			return Argument{}, err
		}
	}
	return tx.addCommand(cmd)
}

// MergeCoins merges sources into destination.
func (tx *Transaction) MergeCoins(destination ObjectInput, sources ...ObjectInput) (Argument, error) {
	d, err := tx.Object(destination)
	if err != nil {
		return Argument{}, err
	}
	cmd := MergeCoins{Destination: d, Sources: make([]Argument, len(sources))}
	for i, s := range sources {
		if cmd.Sources[i], err = tx.Object(s); err != nil {
			return Argument{}, err
		}
	}
	return tx.addCommand(cmd)
}

// Unresolved lists the object ids that still need a lookup.
func (tx *Transaction) Unresolved() []movetype.Address {
	var ids []movetype.Address
	for _, in := range tx.inputs {
		if !in.Resolved() {
			ids = append(ids, in.ObjectID)
		}
	}
	return ids
}

// MarshalBCS writes the transaction as a TransactionKind::ProgrammableTransaction.
func (tx *Transaction) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(0)
	if err := e.WriteLength(len(tx.inputs)); err != nil {
		return err
	}
	for _, in := range tx.inputs {
		if err := in.MarshalBCS(e); err != nil {
			return err
		}
	}
	if err := e.WriteLength(len(tx.commands)); err != nil {
		return err
	}
	for i, c := range tx.commands {
		if err := c.MarshalBCS(e); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, c.Kind(), err)
		}
	}
	return nil
}

// KindBytes returns the BCS transaction kind, as accepted by
// sui_devInspectTransactionBlock. All object inputs must be resolved.
func (tx *Transaction) KindBytes() ([]byte, error) {
	return bcs.Marshal(tx)
}
