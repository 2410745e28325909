package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tonwire/boc/address"
)

// addrCmd encodes a standard address in the raw "workchain:hash" form,
// or the absent address when no argument is given.
var addrCmd = &cobra.Command{
	Use:   "addr [workchain:hash]",
	Short: "Encode an address",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b := newBuilder()
		if len(args) == 0 {
			if err := b.WriteAddress(nil); err != nil {
				return err
			}
			return emit(b)
		}

		a, err := address.ParseStd(args[0])
		if err != nil {
			return err
		}
		if err := b.WriteAddress(a); err != nil {
			return err
		}
		return emit(b)
	},
}

func init() {
	rootCmd.AddCommand(addrCmd)
}
