package main

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/portal-co/asm-common/perms"
	"github.com/portal-co/asm-common/persistence"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "render the records of a permission-buffer file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync()

		r, err := persistence.NewReader(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", args[0], err)
		}
		defer r.Close()

		for idx := 0; ; idx++ {
			in, err := r.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("record %d: %w", idx, err)
			}

			logger.Info("record",
				zap.Int("index", idx),
				zap.String("size", bytefmt.ByteSize(uint64(in.Len()))),
			)
			dumpInput(in)
		}
	},
}

func dumpInput(in *perms.Input) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"offset", "byte", "r", "w", "x", "nj"})

	it := in.AsRef().Iter()
	for i := 0; ; i++ {
		b, tags, ok := it.Next()
		if !ok {
			break
		}
		table.Append([]string{
			fmt.Sprintf("%#06x", i),
			fmt.Sprintf("%02x", b),
			mark(tags.R),
			mark(tags.W),
			mark(tags.X),
			mark(tags.NJ),
		})
	}
	table.Render()
}

func mark(set bool) string {
	if set {
		return "*"
	}
	return ""
}
