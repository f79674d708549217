package obsdk

import (
	"encoding/hex"
	"fmt"

	"github.com/originbyte/ob-sdk-go/bcs"
	"github.com/originbyte/ob-sdk-go/bindings"
	"github.com/originbyte/ob-sdk-go/movetype"
	"github.com/spf13/cobra"
)

func newTypeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "type",
		Short: "Inspect move type strings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "normalize <type>",
		Short: "Print the compressed form of a type and how calls pass it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compressed, err := movetype.CompressType(args[0])
			if err != nil {
				return err
			}
			tag, err := movetype.ParseTypeTag(compressed)
			if err != nil {
				return err
			}
			tagBCS, err := bcs.Marshal(tag)
			if err != nil {
				return err
			}
			kind := "object"
			if movetype.IsPure(compressed) {
				kind = "pure"
			}
			_, known := bindings.Reified(compressed)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "type:  %s\n", compressed)
			fmt.Fprintf(w, "bcs:   0x%s\n", hex.EncodeToString(tagBCS))
			fmt.Fprintf(w, "input: %s\n", kind)
			fmt.Fprintf(w, "bound: %t\n", known == nil)
			return nil
		},
	})
	return cmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the struct types the bindings can decode",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range bindings.Loader().TypeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
