package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/portal-co/asm-common/bitfield"
)

var (
	fieldWord   string
	fieldRanges string
	fieldValue  string
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "pack and unpack instruction word bit fields",
}

var fieldEncodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "write a value into the given bit ranges of a word",
	RunE: func(cmd *cobra.Command, args []string) error {
		word, ranges, err := parseWordAndRanges()
		if err != nil {
			return err
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(fieldValue, "0x"), 16, 32)
		if err != nil {
			return fmt.Errorf("failed to parse -value: %w", err)
		}
		fmt.Printf("%#08x\n", uint32(word.With(ranges, uint32(val))))
		return nil
	},
}

var fieldDecodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "read the value stored in the given bit ranges of a word",
	RunE: func(cmd *cobra.Command, args []string) error {
		word, ranges, err := parseWordAndRanges()
		if err != nil {
			return err
		}
		fmt.Printf("%#x\n", word.Extract(ranges))
		return nil
	},
}

func init() {
	fieldCmd.PersistentFlags().StringVar(&fieldWord, "word", "0x0", "32-bit instruction word, in hex")
	fieldCmd.PersistentFlags().StringVar(&fieldRanges, "ranges", "", "bit ranges, low first, e.g. 0:4,20:28")
	fieldEncodeCmd.Flags().StringVar(&fieldValue, "value", "0x0", "value to pack, in hex")
	fieldCmd.AddCommand(fieldEncodeCmd)
	fieldCmd.AddCommand(fieldDecodeCmd)
}

func parseWordAndRanges() (bitfield.Word, []bitfield.Range, error) {
	w, err := strconv.ParseUint(strings.TrimPrefix(fieldWord, "0x"), 16, 32)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to parse -word: %w", err)
	}
	ranges, err := parseRanges(fieldRanges)
	if err != nil {
		return 0, nil, err
	}
	return bitfield.Word(w), ranges, nil
}

func parseRanges(s string) ([]bitfield.Range, error) {
	if s == "" {
		return nil, fmt.Errorf("-ranges is required")
	}
	var ranges []bitfield.Range
	for _, part := range strings.Split(s, ",") {
		bounds := strings.SplitN(part, ":", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("bad range %q: want start:end", part)
		}
		start, err := strconv.ParseUint(bounds[0], 10, 6)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %w", part, err)
		}
		end, err := strconv.ParseUint(bounds[1], 10, 6)
		if err != nil {
			return nil, fmt.Errorf("bad range %q: %w", part, err)
		}
		if start > end || end > 32 {
			return nil, fmt.Errorf("bad range %q: bounds must satisfy start <= end <= 32", part)
		}
		ranges = append(ranges, bitfield.Range{Start: uint32(start), End: uint32(end)})
	}
	return ranges, nil
}
