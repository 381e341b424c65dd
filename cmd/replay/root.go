package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dbPath is the sqlite file every subcommand opens, set via --db.
var dbPath string

var rootCmd = &cobra.Command{
	Use:   "houndfall-replay",
	Short: "Record and replay houndfall simulation runs",
	Long:  "Record deterministic input-frame logs against the houndfall simulation core, then replay and hash-verify them (spec §8's determinism property).",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "./replays/replaylog.db", "path to the replay sqlite database")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(listCmd)
}
