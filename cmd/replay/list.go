package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no recorded runs; run 'record' first")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("ID", "SEED", "WEAPON", "TICKS", "RECORDED", "HASH")
	for _, r := range runs {
		table.Append(
			fmt.Sprintf("%d", r.ID),
			fmt.Sprintf("%d", r.Seed),
			fmt.Sprintf("%d", r.StartWeapon),
			humanize.Comma(int64(r.TickCount)),
			humanize.Time(time.Unix(r.CreatedUnix, 0)),
			r.FinalSnapshotHash,
		)
	}
	table.Render()
	return nil
}
