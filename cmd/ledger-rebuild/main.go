package main

import (
	"os"

	"github.com/freightdesk/brokerage_backend/config"
	"github.com/freightdesk/brokerage_backend/models"
	"github.com/freightdesk/brokerage_backend/workflow"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ledger-rebuild regenerates every derived account ledger from a snapshot
// export. Safe to re-run: the rebuild is a pure function of the documents and
// banking transactions.
func main() {
	config.LoadEnv()
	logger := config.GetLogger()

	var snapshotPath string
	var outPath string

	rootCmd := &cobra.Command{
		Use:          "ledger-rebuild",
		Short:        "Rebuild all party and supplier ledgers from a snapshot export",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := models.LoadSnapshot(snapshotPath)
			if err != nil {
				config.LogError(logger, "ledger-rebuild", "main", "LoadSnapshot", snapshotPath, err)
				return err
			}
			snap.Ledgers = workflow.RebuildLedgers(snap)
			if err := snap.Save(outPath); err != nil {
				config.LogError(logger, "ledger-rebuild", "main", "SaveSnapshot", outPath, err)
				return err
			}
			logger.WithFields(logrus.Fields{
				"field":   "LedgerRebuild",
				"ledgers": len(snap.Ledgers),
				"out":     outPath,
			}).Info("ledgers rebuilt")
			return nil
		},
	}
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", config.GetEnv("SNAPSHOT_PATH", "snapshot.json"), "path to the snapshot JSON export")
	rootCmd.Flags().StringVar(&outPath, "out", "snapshot.rebuilt.json", "where to write the updated snapshot")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
