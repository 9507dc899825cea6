package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/notion"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/application"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/company"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/contact"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/engagement"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/goals"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/post"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/app"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/auth"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/insight"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

const commandTimeout = 5 * time.Minute

func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func withPool(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) error) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, log, pool)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withPool(cmd, func(ctx context.Context, _ *config.Config, log *slog.Logger, pool *pgxpool.Pool) error {
				return postgres.Migrate(ctx, pool, log)
			})
		},
	}
}

func newTokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a bearer token for a user",
		Long: `Issues a signed access token. There is no login flow; tokens are
minted by an operator and handed to the client.

Example:
  jobctl token 0b7c... --ttl 720h`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("user id: %w", err)
			}
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			token, err := auth.NewManager(cfg.Auth).Issue(userID, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default auth.access_token_ttl)")
	return cmd
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notion-export <user-id>",
		Short: "Export a user's applications to the configured Notion database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("user id: %w", err)
			}
			return withPool(cmd, func(ctx context.Context, cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) error {
				if !cfg.Notion.Enabled() {
					return fmt.Errorf("notion export is not configured (set NOTION_TOKEN and NOTION_DATABASE_ID)")
				}
				client := notion.New(cfg.Notion, log, &http.Client{Timeout: 30 * time.Second})
				if err := client.Ping(ctx); err != nil {
					return fmt.Errorf("notion: %w", err)
				}

				res, err := app.ExportApplications(ctx, log, userID, application.New(pool), company.New(pool), client)
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d, skipped %d, failed %d\n", res.Exported, res.Skipped, res.Failed)
				return err
			})
		},
	}
}

func newDashboardCmd() *cobra.Command {
	var narrativeFlag string
	cmd := &cobra.Command{
		Use:   "dashboard <user-id>",
		Short: "Print a user's dashboard as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("user id: %w", err)
			}
			return withPool(cmd, func(ctx context.Context, cfg *config.Config, log *slog.Logger, pool *pgxpool.Pool) error {
				loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
				if err != nil {
					return fmt.Errorf("dashboard timezone: %w", err)
				}

				ctx = ctxutil.WithUserID(ctx, userID)
				if narrativeFlag != "" {
					narrativeID, err := uuid.Parse(narrativeFlag)
					if err != nil {
						return fmt.Errorf("narrative: %w", err)
					}
					ctx = ctxutil.WithNarrativeID(ctx, narrativeID)
				}

				svc := insight.NewService(log, loc,
					application.New(pool), contact.New(pool), post.New(pool),
					engagement.New(pool), goals.New(pool), company.New(pool))
				d, err := svc.GetDashboard(ctx)
				if err != nil {
					return err
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			})
		},
	}
	cmd.Flags().StringVar(&narrativeFlag, "narrative", "", "active narrative id")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}
