package flatfee

import (
	"github.com/originbyte/ob-sdk-go/bindings/addresses"
	"github.com/originbyte/ob-sdk-go/txb"
)

func target(function string) string {
	return addresses.LaunchpadPublishedAt + "::flat_fee::" + function
}

func New(tx *txb.Transaction, rateBps txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("new"), nil, txb.Pure(rateBps, "u64"))
}

type CalcFeeArgs struct {
	ProceedsValue txb.PureArg
	RateBps       txb.PureArg
}

func CalcFee(tx *txb.Transaction, args CalcFeeArgs) (txb.Argument, error) {
	return tx.MoveCall(target("calc_fee"), nil,
		txb.Pure(args.ProceedsValue, "u64"),
		txb.Pure(args.RateBps, "u64"),
	)
}

type CollectProceedsAndFeesArgs struct {
	Marketplace txb.ObjectInput
	Listing     txb.ObjectInput
}

func CollectProceedsAndFees(tx *txb.Transaction, typeArg string, args CollectProceedsAndFeesArgs) (txb.Argument, error) {
	return tx.MoveCall(target("collect_proceeds_and_fees"), []string{typeArg},
		txb.Obj(args.Marketplace),
		txb.Obj(args.Listing),
	)
}

func InitFee(tx *txb.Transaction, rate txb.PureArg) (txb.Argument, error) {
	return tx.MoveCall(target("init_fee"), nil, txb.Pure(rate, "u64"))
}
