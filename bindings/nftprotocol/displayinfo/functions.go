package displayinfo

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.NftProtocolPublishedAt + "::display_info::" + function
}

type NewArgs struct {
	Name        txb.PureArg
	Description txb.PureArg
}

func New(tx *txb.Transaction, args NewArgs) (txb.Argument, error) {
	return tx.MoveCall(target("new"), nil,
		txb.Pure(args.Name, "0x1::string::String"),
		txb.Pure(args.Description, "0x1::string::String"),
	)
}

func GetDescription(tx *txb.Transaction, displayInfo txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_description"), nil, txb.Obj(displayInfo))
}

func GetName(tx *txb.Transaction, displayInfo txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_name"), nil, txb.Obj(displayInfo))
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

func AssertDisplay(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_display"), nil, txb.Obj(nft))
}

func AssertNoDisplay(tx *txb.Transaction, nft txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("assert_no_display"), nil, txb.Obj(nft))
}

type ChangeDescriptionArgs struct {
	ObjectUid      txb.ObjectInput
	NewDescription txb.PureArg
}

func ChangeDescription(tx *txb.Transaction, typeArgs [2]string, args ChangeDescriptionArgs) (txb.Argument, error) {
	return tx.MoveCall(target("change_description"), typeArgs[:],
		txb.Obj(args.ObjectUid),
		txb.Pure(args.NewDescription, "0x1::string::String"),
	)
}

type ChangeNameArgs struct {
	ObjectUid txb.ObjectInput
	NewName   txb.PureArg
}

func ChangeName(tx *txb.Transaction, typeArgs [2]string, args ChangeNameArgs) (txb.Argument, error) {
	return tx.MoveCall(target("change_name"), typeArgs[:],
		txb.Obj(args.ObjectUid),
		txb.Pure(args.NewName, "0x1::string::String"),
	)
}

func GetDescriptionMut(tx *txb.Transaction, displayInfo txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_description_mut"), nil, txb.Obj(displayInfo))
}

func GetNameMut(tx *txb.Transaction, displayInfo txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("get_name_mut"), nil, txb.Obj(displayInfo))
}
