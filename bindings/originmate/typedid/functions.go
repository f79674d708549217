package typedid

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.OriginmatePublishedAt + "::typed_id::" + function
}

func New(tx *txb.Transaction, typeArg string, obj txb.GenericArg) (txb.Argument, error) {
	return tx.MoveCall(target("new"), []string{typeArg}, txb.Generic(typeArg, obj))
}

func AsID(tx *txb.Transaction, typeArg string, typedID txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("as_id"), []string{typeArg}, txb.Obj(typedID))
}

type EqualsObjectArgs struct {
	TypedID txb.ObjectInput
	Obj     txb.GenericArg
}

func EqualsObject(tx *txb.Transaction, typeArg string, args EqualsObjectArgs) (txb.Argument, error) {
	return tx.MoveCall(target("equals_object"), []string{typeArg},
		txb.Obj(args.TypedID),
		txb.Generic(typeArg, args.Obj),
	)
}

func ToID(tx *txb.Transaction, typeArg string, typedID txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("to_id"), []string{typeArg}, txb.Obj(typedID))
}
