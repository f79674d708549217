package utilssupply

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.UtilsPublishedAt + "::utils_supply::" + function
}

func New(tx *txb.Transaction, max txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("new"), nil, txb.Pure(max, "u64"))
}

type SplitArgs struct {
	Supply txb.ObjectInput
	Value  txb.PureArg
}

func Split(tx *txb.Transaction, args SplitArgs) (txb.Argument, error) {
	return tx.MoveCall(target("split"), nil,
		txb.Obj(args.Supply),
		txb.Pure(args.Value, "u64"),
	)
}

type IncrementArgs struct {
	Supply txb.ObjectInput
	Value  txb.PureArg
}

func Increment(tx *txb.Transaction, args IncrementArgs) (txb.Argument, error) {
	return tx.MoveCall(target("increment"), nil,
		txb.Obj(args.Supply),
		txb.Pure(args.Value, "u64"),
	)
}

func AssertZero(tx *txb.Transaction, supply txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_zero"), nil, txb.Obj(supply))
}

type DecreaseMaximumArgs struct {
	Supply txb.ObjectInput
	Value  txb.PureArg
}

func DecreaseMaximum(tx *txb.Transaction, args DecreaseMaximumArgs) (txb.Argument, error) {
	return tx.MoveCall(target("decrease_maximum"), nil,
		txb.Obj(args.Supply),
		txb.Pure(args.Value, "u64"),
	)
}

type DecrementArgs struct {
	Supply txb.ObjectInput
	Value  txb.PureArg
}

func Decrement(tx *txb.Transaction, args DecrementArgs) (txb.Argument, error) {
	return tx.MoveCall(target("decrement"), nil,
		txb.Obj(args.Supply),
		txb.Pure(args.Value, "u64"),
	)
}

func GetCurrent(tx *txb.Transaction, supply txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_current"), nil, txb.Obj(supply))
}

func GetMax(tx *txb.Transaction, supply txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_max"), nil, txb.Obj(supply))
}

func GetRemaining(tx *txb.Transaction, supply txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_remaining"), nil, txb.Obj(supply))
}

type IncreaseMaximumArgs struct {
	Supply txb.ObjectInput
	Value  txb.PureArg
}

func IncreaseMaximum(tx *txb.Transaction, args IncreaseMaximumArgs) (txb.Argument, error) {
	return tx.MoveCall(target("increase_maximum"), nil,
		txb.Obj(args.Supply),
		txb.Pure(args.Value, "u64"),
	)
}

type MergeArgs struct {
	Supply txb.ObjectInput
	Other  txb.ObjectInput
}

func Merge(tx *txb.Transaction, args MergeArgs) (txb.Argument, error) {
	return tx.MoveCall(target("merge"), nil,
		txb.Obj(args.Supply),
		txb.Obj(args.Other),
	)
}
