package sizedvec

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.UtilsPublishedAt + "::sized_vec::" + function
}

type AppendArgs struct {
	Lhs   txb.ObjectInput
	Other txb.ObjectInput
}

func Append(tx *txb.Transaction, typeArg string, args AppendArgs) (txb.Argument, error) {
	return tx.MoveCall(target("append"), []string{typeArg},
		txb.Obj(args.Lhs),
		txb.Obj(args.Other),
	)
}

type BorrowArgs struct {
	V txb.ObjectInput
	I txb.PureArg
}

func Borrow(tx *txb.Transaction, typeArg string, args BorrowArgs) (txb.Argument, error) {
	return tx.MoveCall(target("borrow"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.I, "u64"),
	)
}

type BorrowMutArgs struct {
	V txb.ObjectInput
	I txb.PureArg
}

func BorrowMut(tx *txb.Transaction, typeArg string, args BorrowMutArgs) (txb.Argument, error) {
	return tx.MoveCall(target("borrow_mut"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.I, "u64"),
	)
}

type ContainsArgs struct {
	V txb.ObjectInput
	E txb.GenericArg
}

func Contains(tx *txb.Transaction, typeArg string, args ContainsArgs) (txb.Argument, error) {
	return tx.MoveCall(target("contains"), []string{typeArg},
		txb.Obj(args.V),
		txb.Generic(typeArg, args.E),
	)
}

func DestroyEmpty(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("destroy_empty"), []string{typeArg}, txb.Obj(v))
}

func Empty(tx *txb.Transaction, typeArg string, capacity txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("empty"), []string{typeArg}, txb.Pure(capacity, "u64"))
}

type IndexOfArgs struct {
	V txb.ObjectInput
	E txb.GenericArg
}

func IndexOf(tx *txb.Transaction, typeArg string, args IndexOfArgs) (txb.Argument, error) {
	return tx.MoveCall(target("index_of"), []string{typeArg},
		txb.Obj(args.V),
		txb.Generic(typeArg, args.E),
	)
}

type InsertArgs struct {
	V txb.ObjectInput
	E txb.GenericArg
	I txb.PureArg
}

func Insert(tx *txb.Transaction, typeArg string, args InsertArgs) (txb.Argument, error) {
	return tx.MoveCall(target("insert"), []string{typeArg},
		txb.Obj(args.V),
		txb.Generic(typeArg, args.E),
		txb.Pure(args.I, "u64"),
	)
}

func IsEmpty(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("is_empty"), []string{typeArg}, txb.Obj(v))
}

func Length(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("length"), []string{typeArg}, txb.Obj(v))
}

func PopBack(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("pop_back"), []string{typeArg}, txb.Obj(v))
}

type PushBackArgs struct {
	V txb.ObjectInput
	E txb.GenericArg
}

func PushBack(tx *txb.Transaction, typeArg string, args PushBackArgs) (txb.Argument, error) {
	return tx.MoveCall(target("push_back"), []string{typeArg},
		txb.Obj(args.V),
		txb.Generic(typeArg, args.E),
	)
}

type RemoveArgs struct {
	V txb.ObjectInput
	I txb.PureArg
}

func Remove(tx *txb.Transaction, typeArg string, args RemoveArgs) (txb.Argument, error) {
	return tx.MoveCall(target("remove"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.I, "u64"),
	)
}

func Reverse(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("reverse"), []string{typeArg}, txb.Obj(v))
}

type SingletonArgs struct {
	Capacity txb.PureArg
	E        txb.GenericArg
}

func Singleton(tx *txb.Transaction, typeArg string, args SingletonArgs) (txb.Argument, error) {
	return tx.MoveCall(target("singleton"), []string{typeArg},
		txb.Pure(args.Capacity, "u64"),
		txb.Generic(typeArg, args.E),
	)
}

type SwapArgs struct {
	V txb.ObjectInput
	I txb.PureArg
	J txb.PureArg
}

func Swap(tx *txb.Transaction, typeArg string, args SwapArgs) (txb.Argument, error) {
	return tx.MoveCall(target("swap"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.I, "u64"),
		txb.Pure(args.J, "u64"),
	)
}

type SwapRemoveArgs struct {
	V txb.ObjectInput
	I txb.PureArg
}

func SwapRemove(tx *txb.Transaction, typeArg string, args SwapRemoveArgs) (txb.Argument, error) {
	return tx.MoveCall(target("swap_remove"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.I, "u64"),
	)
}

func Capacity(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("capacity"), []string{typeArg}, txb.Obj(v))
}

type DecreaseCapacityArgs struct {
	V    txb.ObjectInput
	Bump txb.PureArg
}

func DecreaseCapacity(tx *txb.Transaction, typeArg string, args DecreaseCapacityArgs) (txb.Argument, error) {
	return tx.MoveCall(target("decrease_capacity"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.Bump, "u64"),
	)
}

type IncreaseCapacityArgs struct {
	V    txb.ObjectInput
	Bump txb.PureArg
}

func IncreaseCapacity(tx *txb.Transaction, typeArg string, args IncreaseCapacityArgs) (txb.Argument, error) {
	return tx.MoveCall(target("increase_capacity"), []string{typeArg},
		txb.Obj(args.V),
		txb.Pure(args.Bump, "u64"),
	)
}

func Slack(tx *txb.Transaction, typeArg string, v txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("slack"), []string{typeArg}, txb.Obj(v))
}
