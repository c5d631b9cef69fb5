package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hachure",
	Short: "Convert hatch entities into renderable geometry",
	Long: `hachure turns parsed CAD hatch entities into flat render geometry:
solid fills become triangle meshes, pattern fills become clipped line
sets. Input is a JSON entity document; output is geometry JSON, a PNG
preview, or both.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelInfo
		}
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"also log per-step conversion info, not just diagnostics")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hachure:", err)
		os.Exit(1)
	}
}
