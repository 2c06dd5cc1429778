// asmbits is an operator tool for the asm-common primitives: it dumps
// persisted permission-tagged code buffers and packs/unpacks instruction
// bit fields from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:          "asmbits",
	Short:        "inspect permission buffers and instruction bit fields",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", zapcore.InfoLevel.String(),
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})
	viper.SetEnvPrefix("asmbits")
	viper.AutomaticEnv()

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(constCmd)
}

func newLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
