package symbol

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.NftProtocolPublishedAt + "::symbol::" + function
}

func New(tx *txb.Transaction, symbol txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("new"), nil, txb.Pure(symbol, "0x1::string::String"))
}

func SymbolCall(tx *txb.Transaction, domain txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("symbol"), nil, txb.Obj(domain))
}

type AddDomainArgs struct {
	Nft    txb.ObjectInput
	Domain txb.ObjectInput
}

func AddDomain(tx *txb.Transaction, args AddDomainArgs) (txb.Argument, error) {
	return tx.MoveCall(target("add_domain"), nil,
		txb.Obj(args.Nft),
		txb.Obj(args.Domain),
	)
}

func BorrowDomain(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("borrow_domain"), nil, txb.Obj(nft))
}

func BorrowDomainMut(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("borrow_domain_mut"), nil, txb.Obj(nft))
}

func HasDomain(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("has_domain"), nil, txb.Obj(nft))
}

func RemoveDomain(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("remove_domain"), nil, txb.Obj(nft))
}

func AssertNoSymbol(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_no_symbol"), nil, txb.Obj(nft))
}

func AssertSymbol(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_symbol"), nil, txb.Obj(nft))
}

type SetSymbolArgs struct {
	Domain txb.ObjectInput
	Symbol txb.PureArg
}

func SetSymbol(tx *txb.Transaction, typeArg string, args SetSymbolArgs) (txb.Argument, error) {
	return tx.MoveCall(target("set_symbol"), []string{typeArg},
		txb.Obj(args.Domain),
		txb.Pure(args.Symbol, "0x1::string::String"),
	)
}
