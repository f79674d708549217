package proceeds

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.LaunchpadPublishedAt + "::proceeds::" + function
}

func Empty(tx *txb.Transaction) (txb.Argument, error) {
	return tx.MoveCall(target("empty"), nil)
}

type AddArgs struct {
	Proceeds    txb.ObjectInput
	NewProceeds txb.ObjectInput
	QtySold     txb.PureArg
}

func Add(tx *txb.Transaction, typeArg string, args AddArgs) (txb.Argument, error) {
	return tx.MoveCall(target("add"), []string{typeArg},
		txb.Obj(args.Proceeds),
		txb.Obj(args.NewProceeds),
		txb.Pure(args.QtySold, "u64"),
	)
}

func Balance(tx *txb.Transaction, typeArg string, proceeds txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("balance"), []string{typeArg}, txb.Obj(proceeds))
}

func BalanceMut(tx *txb.Transaction, typeArg string, proceeds txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("balance_mut"), []string{typeArg}, txb.Obj(proceeds))
}

type CollectWithFeesArgs struct {
	Proceeds            txb.ObjectInput
	Fees                txb.PureArg
	MarketplaceReceiver txb.PureArg
	ListingReceiver     txb.PureArg
}

func CollectWithFees(tx *txb.Transaction, typeArg string, args CollectWithFeesArgs) (txb.Argument, error) {
	return tx.MoveCall(target("collect_with_fees"), []string{typeArg},
		txb.Obj(args.Proceeds),
		txb.Pure(args.Fees, "u64"),
		txb.Pure(args.MarketplaceReceiver, "address"),
		txb.Pure(args.ListingReceiver, "address"),
	)
}

type CollectWithoutFeesArgs struct {
	Proceeds        txb.ObjectInput
	ListingReceiver txb.PureArg
}

func CollectWithoutFees(tx *txb.Transaction, typeArg string, args CollectWithoutFeesArgs) (txb.Argument, error) {
	return tx.MoveCall(target("collect_without_fees"), []string{typeArg},
		txb.Obj(args.Proceeds),
		txb.Pure(args.ListingReceiver, "address"),
	)
}

func Collected(tx *txb.Transaction, proceeds txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("collected"), nil, txb.Obj(proceeds))
}

func Total(tx *txb.Transaction, proceeds txb.ObjectInput) (txb.Argument, error) {
	return tx.MoveCall(target("total"), nil, txb.Obj(proceeds))
}
