package obsdk

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings"
	"github.com/originbyte/ob-sdk-go/internal/utils"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/originbyte/ob-sdk-go/reified"
	"github.com/originbyte/ob-sdk-go/suiclient"
	"github.com/originbyte/ob-sdk-go/txb"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCallCmd(a *app) *cobra.Command {
	var (
		typeArgs []string
		args     []string
		inspect  bool
		sender   string
	)
	cmd := &cobra.Command{
		Use:   "call <package::module::function>",
		Short: "Build a single move call and print its transaction kind",
		Long: `Build a programmable transaction with one move call.

Arguments are given as type:value, for example
  --arg u64:100 --arg 0x2::clock::Clock:0x6 --arg "vector<u8>:[1,2]" --arg gas

Object arguments are resolved against the fullnode. With --inspect the call
is dry run through sui_devInspectTransactionBlock and the return values are
decoded with the bindings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			tx, err := buildCall(pos[0], typeArgs, args)
			if err != nil {
				return err
			}

			var client *suiclient.Client
			if len(tx.Unresolved()) > 0 || inspect {
				if client, err = a.client(); err != nil {
					return err
				}
			}
			if len(tx.Unresolved()) > 0 {
				if err := tx.Resolve(cmd.Context(), client); err != nil {
					return err
				}
			}
			kind, err := tx.KindBytes()
			if err != nil {
				return errors.WithMessage(err, "failed to encode transaction")
			}
			if !inspect {
				fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(kind))
				return nil
			}

			res, err := client.DevInspectTransactionBlock(cmd.Context(), sender, kind)
			if err != nil {
				return err
			}
			out := inspectOutput{
				KindBytes: base64.StdEncoding.EncodeToString(kind),
				Error:     res.Error,
				Results:   decodeResults(res.Results, a.logger),
			}
			data, err := json.Marshal(out)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&typeArgs, "type-arg", nil, "Type argument, repeatable")
	f.StringArrayVar(&args, "arg", nil, "Call argument as type:value or gas, repeatable")
	f.BoolVar(&inspect, "inspect", false, "Dev inspect the call and decode its return values")
	f.StringVar(&sender, "sender", movetype.Address{}.String(), "Sender address for --inspect")
	return cmd
}

// buildCall builds a transaction with a single move call to target.
func buildCall(target string, typeArgs, args []string) (*txb.Transaction, error) {
	t, err := movetype.ParseTarget(target)
	if err != nil {
		return nil, err
	}
	types := make([]string, len(typeArgs))
	for i, typ := range typeArgs {
		if types[i], err = movetype.CompressType(typ); err != nil {
			return nil, errors.WithMessagef(err, "type argument %d", i)
		}
	}
	callArgs := make([]txb.Arg, len(args))
	for i, s := range args {
		if callArgs[i], err = utils.ParseCallArg(s); err != nil {
			return nil, errors.WithMessagef(err, "argument %d", i)
		}
	}

	tx := txb.New()
	if _, err := tx.MoveCall(t.String(), types, callArgs...); err != nil {
		return nil, err
	}
	return tx, nil
}

type inspectOutput struct {
	KindBytes string          `json:"kindBytes"`
	Error     string          `json:"error,omitempty"`
	Results   [][]returnValue `json:"results"`
}

type returnValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
	Hex   string          `json:"hex,omitempty"`
}

// decodeResults decodes return values whose type the bindings know and
// falls back to hex for the rest.
func decodeResults(results []suiclient.ExecutionResult, logger *zap.Logger) [][]returnValue {
	out := make([][]returnValue, len(results))
	for i, r := range results {
		out[i] = make([]returnValue, len(r.ReturnValues))
		for j, rv := range r.ReturnValues {
			out[i][j] = returnValue{Type: rv.Type}
			value, err := decodeReturnValue(rv)
			if err != nil {
				logger.Debug("Return value not decoded",
					zap.String("type", rv.Type), zap.Error(err))
				out[i][j].Hex = "0x" + hex.EncodeToString(rv.Bytes)
				continue
			}
			out[i][j].Value = value
		}
	}
	return out
}

func decodeReturnValue(rv suiclient.ReturnValue) (json.RawMessage, error) {
	codec, err := bindings.Reified(rv.Type)
	if err != nil {
		return nil, err
	}
	d := bcs.NewDecoder(rv.Bytes)
	v, err := codec.DecodeBCS(d)
	if err != nil {
		return nil, err
	}
	if err := d.Finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", rv.Type, err)
	}
	return reified.ToJSON(codec, v)
}
