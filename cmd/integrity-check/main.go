package main

import (
	"os"

	"github.com/freightdesk/brokerage_backend/config"
	"github.com/freightdesk/brokerage_backend/models"
	"github.com/freightdesk/brokerage_backend/workflow"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// integrity-check validates every stored ledger against a fresh recomputation
// and, with --migrate, links legacy documents that have no ledger entries.
// Exits non-zero when a mismatch is found so it can gate a nightly job.
func main() {
	config.LoadEnv()
	logger := config.GetLogger()

	var snapshotPath string
	var outPath string
	var migrate bool

	rootCmd := &cobra.Command{
		Use:          "integrity-check",
		Short:        "Validate stored ledgers against a fresh recomputation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := models.LoadSnapshot(snapshotPath)
			if err != nil {
				config.LogError(logger, "integrity-check", "main", "LoadSnapshot", snapshotPath, err)
				return err
			}

			documents := snap.Documents.Documents()
			accounts := snap.Accounts()

			unlinked := workflow.DetectUnlinkedDocuments(documents, snap.BankTransactions, snap.Ledgers)
			logger.WithFields(logrus.Fields{
				"field":    "IntegrityCheck",
				"unlinked": unlinked,
			}).Info("unlinked document scan complete")

			if migrate && unlinked > 0 {
				updated, report := workflow.Migrate(documents, snap.BankTransactions, snap.Ledgers, accounts)
				snap.Ledgers = updated
				logger.WithFields(logrus.Fields{
					"field":              "IntegrityCheck",
					"documents_migrated": report.DocumentsMigrated,
					"accounts_touched":   report.AccountsTouched,
					"errors":             report.Errors,
				}).Info("migration pass complete")
				if outPath != "" {
					if err := snap.Save(outPath); err != nil {
						config.LogError(logger, "integrity-check", "main", "SaveSnapshot", outPath, err)
						return err
					}
				}
			}

			report := workflow.ValidateIntegrity(snap.Ledgers, accounts, documents, snap.BankTransactions)
			if !report.IsValid {
				for _, issue := range report.Issues {
					logger.WithFields(logrus.Fields{
						"field":        "IntegrityCheck",
						"account_id":   issue.AccountId,
						"account_name": issue.AccountName,
						"stored":       issue.Stored,
						"computed":     issue.Computed,
					}).Warn(issue.Detail)
				}
				logger.WithField("field", "IntegrityCheck").Error(report.Summary)
				os.Exit(1)
			}
			logger.WithField("field", "IntegrityCheck").Info(report.Summary)
			return nil
		},
	}
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", config.GetEnv("SNAPSHOT_PATH", "snapshot.json"), "path to the snapshot JSON export")
	rootCmd.Flags().StringVar(&outPath, "out", "", "write the migrated snapshot here (with --migrate)")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "link legacy documents lacking ledger entries before validating")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
