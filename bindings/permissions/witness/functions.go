package witness

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.PermissionsPublishedAt + "::witness::" + function
}

func Delegate(tx *txb.Transaction, typeArg string, generator txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("delegate"), []string{typeArg}, txb.Obj(generator))
}

func FromPublisher(tx *txb.Transaction, typeArg string, publisher txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("from_publisher"), []string{typeArg}, txb.Obj(publisher))
}

func FromWitness(tx *txb.Transaction, typeArgs [2]string, witness txb.GenericArg) (txb.Argument, error) {
	return tx.MoveCall(target("from_witness"), typeArgs[:], txb.Generic(typeArgs[1], witness))
}

func Generator(tx *txb.Transaction, typeArgs [2]string, witness txb.GenericArg) (txb.Argument, error) {
	return tx.MoveCall(target("generator"), typeArgs[:], txb.Generic(typeArgs[1], witness))
}

func GeneratorDelegated(tx *txb.Transaction, typeArg string, witness txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("generator_delegated"), []string{typeArg}, txb.Obj(witness))
}
