package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/portal-co/asm-common/value"
)

var (
	constBits uint
	constHex  string
)

var constCmd = &cobra.Command{
	Use:   "const",
	Short: "interpret a hex constant at a given bitness",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, ok := value.BitnessFromBits(constBits)
		if !ok {
			return fmt.Errorf("bad -bits %d: want a power of two in 8..512", constBits)
		}
		data, err := hex.DecodeString(constHex)
		if err != nil {
			return fmt.Errorf("failed to parse -hex: %w", err)
		}
		c, ok := value.ConstantFromBytes(b, data)
		if !ok {
			return fmt.Errorf("need %d bytes for %s, got %d", b.Bytes(), b, len(data))
		}

		fmt.Printf("%s bytes: %x\n", b, c.Bytes(b))
		bits := c.Bits(b)
		fmt.Printf("%s bits (lsb first): ", b)
		for _, bit := range bits {
			if bit {
				fmt.Print("1")
			} else {
				fmt.Print("0")
			}
		}
		fmt.Println()
		return nil
	},
}

func init() {
	constCmd.Flags().UintVar(&constBits, "bits", 64, "bit width, a power of two in 8..512")
	constCmd.Flags().StringVar(&constHex, "hex", "", "constant bytes, lowest first, in hex")
}
