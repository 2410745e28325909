package cmd

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"
)

// intCmd encodes one fixed-width two's-complement signed field.
var intCmd = &cobra.Command{
	Use:   "int <value> <bits>",
	Short: "Encode a fixed-width signed integer",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return fmt.Errorf("not a decimal number: %q", args[0])
		}
		bits, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad bit width %q: %w", args[1], err)
		}

		b := newBuilder()
		if err := b.WriteBigInt(value, bits); err != nil {
			return err
		}
		return emit(b)
	},
}

func init() {
	rootCmd.AddCommand(intCmd)
}
