package main

import (
	"fmt"
	"os"
	"time"

	"houndfall/internal/core"
	"houndfall/internal/progression"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var verifyRunID int64

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Replay a recorded run and confirm it reproduces its stored hash",
	Args:  cobra.NoArgs,
	RunE:  runVerify,
}

func init() {
	verifyCmd.Flags().Int64Var(&verifyRunID, "run", 0, "run id to verify (0 = most recent)")
}

func runVerify(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	runID := verifyRunID
	if runID == 0 {
		runs, err := store.ListRuns()
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}
		if len(runs) == 0 {
			return fmt.Errorf("no recorded runs; run 'record' first")
		}
		runID = runs[0].ID
	}

	info, err := store.LoadRun(runID)
	if err != nil {
		return err
	}
	frames, err := store.LoadFrames(runID)
	if err != nil {
		return err
	}

	c := core.NewCore(progression.NoopHook{})
	c.InitRun(info.Seed, info.StartWeapon)

	tickDurations := make([]float64, 0, len(frames))
	var hash []byte
	for i, f := range frames {
		start := time.Now()
		c.SetPlayerInput(f)
		c.Update(float32(info.DTSeconds))
		tickDurations = append(tickDurations, time.Since(start).Seconds())
		hash = snapshotHash(hash, c)
		_ = i
	}
	got := hashHex(hash)

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Field", "Value")
	table.Append("run id", fmt.Sprintf("%d", info.ID))
	table.Append("recorded", humanize.Time(time.Unix(info.CreatedUnix, 0)))
	table.Append("seed", fmt.Sprintf("%d", info.Seed))
	table.Append("ticks replayed", humanize.Comma(int64(len(frames))))
	table.Append("stored hash", info.FinalSnapshotHash)
	table.Append("replayed hash", got)

	match := got == info.FinalSnapshotHash
	table.Append("match", fmt.Sprintf("%v", match))

	if len(tickDurations) > 0 {
		mean, stddev := stat.MeanStdDev(tickDurations, nil)
		table.Append("mean tick time", fmt.Sprintf("%.6fs", mean))
		table.Append("tick time stddev", fmt.Sprintf("%.6fs", stddev))
	}
	table.Render()

	if !match {
		return fmt.Errorf("determinism check failed for run %d: stored=%s replayed=%s", runID, info.FinalSnapshotHash, got)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "determinism verified: replay matches recorded run bit-for-bit")
	return nil
}
