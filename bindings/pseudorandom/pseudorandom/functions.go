package pseudorandom

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.PseudorandomPublishedAt + "::pseudorandom::" + function
}

func Init(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("init"), nil)
}

func BCSU128FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("bcs_u128_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func BCSU64FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("bcs_u64_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func BCSU8FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("bcs_u8_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func Increment(tx *txb.Transaction, counter txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("increment"), nil, txb.Obj(counter))
}

func NonceCounter(tx *txb.Transaction, counter txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("nonce_counter"), nil, txb.Obj(counter))
}

func NoncePrimitives(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("nonce_primitives"), nil)
}

type RandArgs struct {
	Nonce   txb.PureArg
	Counter txb.ObjectInput
}

func Rand(tx *txb.Transaction, args RandArgs) (txb.Argument, error) {
	return tx.MoveCall(target("rand"), nil,
		txb.Pure(args.Nonce, "vector<u8>"),
		txb.Obj(args.Counter),
	)
}

func RandNoCounter(tx *txb.Transaction, nonce txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("rand_no_counter"), nil, txb.Pure(nonce, "vector<u8>"))
}

type RandNoCtxArgs struct {
	Nonce   txb.PureArg
	Counter txb.ObjectInput
}

func RandNoCtx(tx *txb.Transaction, args RandNoCtxArgs) (txb.Argument, error) {
	return tx.MoveCall(target("rand_no_ctx"), nil,
		txb.Pure(args.Nonce, "vector<u8>"),
		txb.Obj(args.Counter),
	)
}

func RandNoNonce(tx *txb.Transaction, counter txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("rand_no_nonce"), nil, txb.Obj(counter))
}

func RandWithCounter(tx *txb.Transaction, counter txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("rand_with_counter"), nil, txb.Obj(counter))
}

func RandWithCtx(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("rand_with_ctx"), nil)
}

func RandWithNonce(tx *txb.Transaction, nonce txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("rand_with_nonce"), nil, txb.Pure(nonce, "vector<u8>"))
}

type SelectU64Args struct {
	Bound  txb.PureArg
	Random txb.PureArg
}

func SelectU64(tx *txb.Transaction, args SelectU64Args) (txb.Argument, error) {
	return tx.MoveCall(target("select_u64"), nil,
		txb.Pure(args.Bound, "u64"),
		txb.Pure(args.Random, "vector<u8>"),
	)
}

func U128FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("u128_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func U256FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("u256_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func U64FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("u64_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}

func U8FromBytes(tx *txb.Transaction, bytes txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("u8_from_bytes"), nil, txb.Pure(bytes, "vector<u8>"))
}
