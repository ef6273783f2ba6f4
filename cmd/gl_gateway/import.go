package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SscSPs/gl_gateway/internal/dto"
	"github.com/SscSPs/gl_gateway/internal/platform/session"
)

func newImportCommand() *cobra.Command {
	var (
		userName string
		password string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Record the journal entries of a CSV file",
		Long:  "Reads reference,date,account,label,debit,credit rows and records one journal entry per reference.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			a, err := newApp(ctx, logger, false)
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				_ = f.Close()
			}()

			if dryRun {
				rows, err := a.services.Import.ParseRows(f)
				if err != nil {
					return err
				}
				logger.Info("CSV is valid", slog.Int("rows", len(rows)))
				return nil
			}

			if password == "" {
				password = os.Getenv("ERP_PASSWORD")
			}
			if userName == "" || password == "" {
				return fmt.Errorf("--user and --password (or ERP_PASSWORD) are required")
			}

			token, err := a.repos.TokenIssuer.IssueToken(ctx, userName, password)
			if err != nil {
				return fmt.Errorf("ERP login: %w", err)
			}
			now := time.Now()
			sess := session.Session{
				ID:        uuid.NewString(),
				UserName:  userName,
				ERPToken:  token,
				CreatedAt: now,
				ExpiresAt: now.Add(a.cfg.SessionTTL),
			}
			if err := a.sessions.Save(ctx, sess); err != nil {
				return err
			}
			ctx = session.NewContext(ctx, &sess)

			results, err := a.services.Import.ImportJournals(ctx, f)
			if err != nil {
				return err
			}
			resp := dto.ToImportJournalsResponse(results)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(resp); err != nil {
				return err
			}
			if resp.Failed > 0 {
				return fmt.Errorf("%d of %d journal entries failed", resp.Failed, len(resp.Results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userName, "user", "", "ERP user name")
	cmd.Flags().StringVar(&password, "password", "", "ERP password")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only validate the file")
	return cmd
}
