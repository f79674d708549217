package txb

import (
	"fmt"

	"github.com/originbyte/ob-sdk-go/bcs"
)

// ArgumentKind is the BCS variant of an Argument.
type ArgumentKind uint8

const (
	KindGasCoin ArgumentKind = iota
	KindInput
	KindResult
	KindNestedResult
)

// Argument refers to a value available to a command: the gas coin, an
// input, or the result of an earlier command.
type Argument struct {
	Kind        ArgumentKind
	Index       uint16
	ResultIndex uint16
}

// GasCoin is the coin paying for gas.
func GasCoin() Argument {
	return Argument{Kind: KindGasCoin}
}

// Nested selects the i-th value returned by a command with several results.
func (a Argument) Nested(i uint16) Argument {
	if a.Kind != KindResult && a.Kind != KindNestedResult {
		return a
	}
	return Argument{Kind: KindNestedResult, Index: a.Index, ResultIndex: i}
}

// String renders a as it appears in error messages.
func (a Argument) String() string {
	switch a.Kind {
	case KindGasCoin:
		return "GasCoin"
	case KindInput:
		return fmt.Sprintf("Input(%d)", a.Index)
	case KindResult:
		return fmt.Sprintf("Result(%d)", a.Index)
	case KindNestedResult:
		return fmt.Sprintf("NestedResult(%d, %d)", a.Index, a.ResultIndex)
	}
	return fmt.Sprintf("Argument(%d)", a.Kind)
}

func (a Argument) MarshalBCS(e *bcs.Encoder) error {
	e.WriteULEB128(uint32(a.Kind))
	switch a.Kind {
	case KindGasCoin:
	case KindInput, KindResult:
		e.WriteU16(a.Index)
	case KindNestedResult:
		e.WriteU16(a.Index)
		e.WriteU16(a.ResultIndex)
	default:
		return fmt.Errorf("unknown argument kind %d", a.Kind)
	}
	return nil
}

func (a Argument) objectInput() {}

func (a Argument) build(*Transaction) (Argument, error) {
	return a, nil
}

// Arg is a move call argument. It is added to the transaction when the call
// that uses it is built.
type Arg interface {
	build(tx *Transaction) (Argument, error)
}

type argFunc func(tx *Transaction) (Argument, error)

func (f argFunc) build(tx *Transaction) (Argument, error) {
	return f(tx)
}

func writeArguments(e *bcs.Encoder, args []Argument) error {
	if err := e.WriteLength(len(args)); err != nil {
		return err
	}
	for _, a := range args {
		if err := a.MarshalBCS(e); err != nil {
			return err
		}
	}
	return nil
}
