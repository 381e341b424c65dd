package main

import (
	"fmt"
	"os"
	"path/filepath"

	"houndfall/internal/core"
	"houndfall/internal/progression"
	"houndfall/internal/replaylog"

	"github.com/spf13/cobra"
)

var (
	recordSeed   uint32
	recordWeapon uint32
	recordTicks  int
	recordDT     float64
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a deterministic pseudo-random input session",
	Args:  cobra.NoArgs,
	RunE:  runRecord,
}

func init() {
	recordCmd.Flags().Uint32Var(&recordSeed, "seed", 12345, "simulation seed")
	recordCmd.Flags().Uint32Var(&recordWeapon, "weapon", 0, "starting weapon id")
	recordCmd.Flags().IntVar(&recordTicks, "ticks", 600, "number of ticks to record")
	recordCmd.Flags().Float64Var(&recordDT, "dt", 1.0/60.0, "fixed per-tick delta seconds")
}

func openStore() (*replaylog.Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating replay directory: %w", err)
		}
	}
	return replaylog.Open(dbPath)
}

func runRecord(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	frames := synthFrames(recordSeed, recordTicks)

	rec, err := store.StartRun(recordSeed, recordWeapon, recordDT)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}

	c := core.NewCore(progression.NoopHook{})
	c.InitRun(recordSeed, recordWeapon)

	var hash []byte
	for i, f := range frames {
		c.SetPlayerInput(f)
		c.Update(float32(recordDT))
		hash = snapshotHash(hash, c)
		if err := rec.Append(uint64(i), f); err != nil {
			rec.Abort()
			return fmt.Errorf("recording frame %d: %w", i, err)
		}
	}

	runID, err := rec.Finish(hashHex(hash))
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "recorded run %d: seed=%d weapon=%d ticks=%d hash=%s\n",
		runID, recordSeed, recordWeapon, recordTicks, hashHex(hash))
	return nil
}
