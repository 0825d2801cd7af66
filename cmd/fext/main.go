// Package main is the entry point for the fext CLI, a fast-extract pass
// for combinational SOP networks in BLIF format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fext/pkg/extract"
	"fext/pkg/fx"
	"fext/pkg/utils"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the fast-extract pass on a BLIF network.
var rootCmd = &cobra.Command{
	Use:   "fext",
	Short: "Shared-divisor extraction for SOP logic networks",
	Long: `fext reads a combinational network in BLIF format, finds product
terms shared across node covers, factors them into new shared nodes, and
writes the rewritten network back out. The network is left unchanged when
no beneficial divisor exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := viper.GetString("input")
		output := viper.GetString("output")
		budget := viper.GetInt("nodes")
		verbose := viper.GetBool("verbose")

		if input == "" {
			return fmt.Errorf("an input file is required")
		}
		if budget < 1 {
			return fmt.Errorf("the node budget must be at least 1")
		}

		logger, err := utils.NewLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		defer logger.Sync()

		ntk, err := utils.ParseBlifFile(input)
		if err != nil {
			return fmt.Errorf("failed to parse network: %w", err)
		}
		litsBefore := ntk.LitNum()
		nodesBefore := ntk.NodeNum()

		changed := fx.FastExtract(ntk, budget, extract.SingleCubeDivisors, logger)

		logger.Info("fast extract finished",
			zap.String("network", ntk.Name),
			zap.Bool("changed", changed),
			zap.Int("nodes", ntk.NodeNum()),
			zap.Int("nodesBefore", nodesBefore),
			zap.Int("literals", ntk.LitNum()),
			zap.Int("literalsBefore", litsBefore))

		if output != "" {
			if err := utils.WriteBlifFile(output, ntk); err != nil {
				return fmt.Errorf("failed to write network: %w", err)
			}
			logger.Info("wrote network", zap.String("file", output))
		}
		return nil
	},
}

// versionCmd reports the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fext version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.Flags().StringP("input", "i", "", "Input network in BLIF format")
	rootCmd.Flags().StringP("output", "o", "", "Output file (omit to skip writing)")
	rootCmd.Flags().IntP("nodes", "n", 1000, "Maximum number of nodes to extract")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	viper.BindPFlag("input", rootCmd.Flags().Lookup("input"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("nodes", rootCmd.Flags().Lookup("nodes"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.SetEnvPrefix("FEXT")
	viper.AutomaticEnv()

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
