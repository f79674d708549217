package creators

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.NftProtocolPublishedAt + "::creators::" + function
}

func Empty(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("empty"), nil)
}

func IsEmpty(tx *txb.Transaction, domain txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("is_empty"), nil, txb.Obj(domain))
}

func New(tx *txb.Transaction, creators txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("new"), nil, txb.Obj(creators))
}

func Delete(tx *txb.Transaction, creators txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("delete"), nil, txb.Obj(creators))
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

type AddCreatorArgs struct {
	Creators txb.ObjectInput
	Who      txb.PureArg
}

func AddCreator(tx *txb.Transaction, args AddCreatorArgs) (txb.Argument, error) {
	return tx.MoveCall(target("add_creator"), nil,
		txb.Obj(args.Creators),
		txb.Pure(args.Who, "address"),
	)
}

func AssertCreators(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_Creators"), nil, txb.Obj(nft))
}

type AssertCreatorArgs struct {
	Domain txb.ObjectInput
	Who    txb.PureArg
}

func AssertCreator(tx *txb.Transaction, args AssertCreatorArgs) (txb.Argument, error) {
	return tx.MoveCall(target("assert_creator"), nil,
		txb.Obj(args.Domain),
		txb.Pure(args.Who, "address"),
	)
}

func AssertNoCreators(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_no_Creators"), nil, txb.Obj(nft))
}

type ContainsCreatorArgs struct {
	Creators txb.ObjectInput
	Who      txb.PureArg
}

func ContainsCreator(tx *txb.Transaction, args ContainsCreatorArgs) (txb.Argument, error) {
	return tx.MoveCall(target("contains_creator"), nil,
		txb.Obj(args.Creators),
		txb.Pure(args.Who, "address"),
	)
}

func GetCreators(tx *txb.Transaction, domain txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_Creators"), nil, txb.Obj(domain))
}

type RemoveCreatorArgs struct {
	Creators txb.ObjectInput
	Who      txb.PureArg
}

func RemoveCreator(tx *txb.Transaction, args RemoveCreatorArgs) (txb.Argument, error) {
	return tx.MoveCall(target("remove_creator"), nil,
		txb.Obj(args.Creators),
		txb.Pure(args.Who, "address"),
	)
}
