package cmd

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/tonwire/boc/shared"
)

// coinsCmd encodes a monetary amount in the canonical variable-length
// encoding.
var coinsCmd = &cobra.Command{
	Use:   "coins <amount>",
	Short: "Encode a coin amount",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("not a decimal amount: %q", args[0])
		}

		b := newBuilder()
		if err := b.WriteCoins(amount); err != nil {
			return err
		}
		log.Debugw("coin amount", "bytes", shared.BigNumBytes(amount))
		return emit(b)
	},
}

func init() {
	rootCmd.AddCommand(coinsCmd)
}
