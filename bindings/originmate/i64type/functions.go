package i64type

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.OriginmatePublishedAt + "::i64_type::" + function
}

func IsZero(tx *txb.Transaction, x txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("is_zero"), nil, txb.Obj(x))
}

func Abs(tx *txb.Transaction, x txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("abs"), nil, txb.Obj(x))
}

type AddArgs struct {
	A txb.ObjectInput
	B txb.ObjectInput
}

func Add(tx *txb.Transaction, args AddArgs) (txb.Argument, error) {
	return tx.MoveCall(target("add"), nil,
		txb.Obj(args.A),
		txb.Obj(args.B),
	)
}

type CompareArgs struct {
	A txb.ObjectInput
	B txb.ObjectInput
}

func Compare(tx *txb.Transaction, args CompareArgs) (txb.Argument, error) {
	return tx.MoveCall(target("compare"), nil,
		txb.Obj(args.A),
		txb.Obj(args.B),
	)
}

type DivArgs struct {
	A txb.ObjectInput
	B txb.ObjectInput
}

func Div(tx *txb.Transaction, args DivArgs) (txb.Argument, error) {
	return tx.MoveCall(target("div"), nil,
		txb.Obj(args.A),
		txb.Obj(args.B),
	)
}

func From(tx *txb.Transaction, x txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("from"), nil, txb.Pure(x, "u64"))
}

func IsNeg(tx *txb.Transaction, x txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("is_neg"), nil, txb.Obj(x))
}

type MulArgs struct {
	A txb.ObjectInput
	B txb.ObjectInput
}

func Mul(tx *txb.Transaction, args MulArgs) (txb.Argument, error) {
	return tx.MoveCall(target("mul"), nil,
		txb.Obj(args.A),
		txb.Obj(args.B),
	)
}

func Neg(tx *txb.Transaction, x txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("neg"), nil, txb.Obj(x))
}

func NegFrom(tx *txb.Transaction, x txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("neg_from"), nil, txb.Pure(x, "u64"))
}

type SubArgs struct {
	A txb.ObjectInput
	B txb.ObjectInput
}

func Sub(tx *txb.Transaction, args SubArgs) (txb.Argument, error) {
	return tx.MoveCall(target("sub"), nil,
		txb.Obj(args.A),
		txb.Obj(args.B),
	)
}

func Zero(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("zero"), nil)
}

func AsU64(tx *txb.Transaction, x txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("as_u64"), nil, txb.Obj(x))
}
