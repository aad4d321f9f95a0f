package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-bareinfo/internal/export"
	"github.com/go-tangra/go-tangra-bareinfo/internal/store"
)

func newHistoryCmd() *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List snapshots stored with --export-sqlite",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().Int("limit", 20, "number of snapshots to list")

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete snapshots older than the specified number of days",
		Args:  cobra.NoArgs,
		RunE:  runPurge,
	}
	purgeCmd.Flags().Int("days", 90, "purge snapshots older than this many days")

	historyCmd.AddCommand(purgeCmd)
	return historyCmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	db, err := openExisting(e.outputPath(e.cfg.DatabasePath))
	if err != nil {
		return err
	}
	if db == nil {
		writeHistory(cmd.OutOrStdout(), nil, time.Now())
		return nil
	}
	defer db.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := db.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	writeHistory(cmd.OutOrStdout(), records, time.Now())
	return nil
}

// openExisting opens the snapshot database at path. It returns a nil store
// when no database has been written yet, so read-only commands leave no
// file behind.
func openExisting(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := store.New(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

func writeHistory(w io.Writer, records []store.SnapshotRecord, now time.Time) {
	tw := tabwriter.NewWriter(w, 4, 4, 3, ' ', 0)
	writeRow(tw, "ID", "STORED", "KERNEL", "DISTRO", "SECURE BOOT", "TOTAL RAM", "FREE RAM")
	for _, rec := range records {
		writeRow(tw,
			strconv.FormatInt(rec.ID, 10),
			humanize.RelTime(rec.StoredAt, now, "ago", "from now"),
			rec.Kernel,
			rec.Distro,
			rec.SecureBoot,
			export.FormatGB(rec.TotalRAMGB),
			export.FormatGB(rec.FreeRAMGB),
		)
	}
	tw.Flush()
}

func writeRow(w io.Writer, cols ...string) {
	io.WriteString(w, strings.Join(cols, "\t"))
	io.WriteString(w, "\t\n")
}

func runPurge(cmd *cobra.Command, _ []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	days, _ := cmd.Flags().GetInt("days")
	if days < 0 {
		return fmt.Errorf("invalid --days %d", days)
	}

	db, err := openExisting(e.outputPath(e.cfg.DatabasePath))
	if err != nil {
		return err
	}
	if db == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Purged 0 snapshots older than %d days\n", days)
		return nil
	}
	defer db.Close()

	n, err := db.Purge(cmd.Context(), time.Duration(days)*24*time.Hour)
	if err != nil {
		return fmt.Errorf("purge: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Purged %d snapshots older than %d days\n", n, days)
	return nil
}
