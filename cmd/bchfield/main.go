package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/bchfield/internal/cli"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "bchfield",
		Short: "GF(2^M) arithmetic core for BCH error correction",
		Long: `Bchfield implements the finite-field arithmetic a BCH codec is built on.

All operations work in GF(2^M) over a built-in table of irreducible
moduli (M = 2..16). Elements pass as M-bit values, binary by default.

Features:
- Parallel and M-step serial standard-basis multipliers
- Dual-basis (mixed) multipliers for trinomial moduli
- Dedicated squaring and cubing units
- Fermat-method divider/inverter stepped by an LFSR sequencer
- Syndrome term combining for decoder pipelines`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
	}

	rootCmd.AddCommand(
		cli.NewTablesCommand(),
		cli.NewMulCommand(),
		cli.NewDivCommand(),
		cli.NewCubeCommand(),
		cli.NewSyndromeCommand(),
		cli.NewSelftestCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
