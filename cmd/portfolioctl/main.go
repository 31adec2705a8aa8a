package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/t2bot/portfolio-repo/common/config"
	"github.com/t2bot/portfolio-repo/common/rcontext"
	"github.com/t2bot/portfolio-repo/common/version"
	"github.com/t2bot/portfolio-repo/controllers/auth_controller"
	"github.com/t2bot/portfolio-repo/database"
	"github.com/t2bot/portfolio-repo/url_embeds"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	version.SetDefaults()
	rootCmd := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Operator tools for the portfolio repository",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFiles(".env", ".env.local"); err != nil {
				return err
			}
			if env := os.Getenv("PORTFOLIO_CONFIG"); env != "" && !cmd.Flags().Changed("config") {
				configPath = env
			}
			config.Path = configPath
			return nil
		},
	}
	rootCmd.SetVersionTemplate("portfolioctl version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "portfolio-repo.yaml", "The path to the configuration")

	rootCmd.AddCommand(newParseUrlCmd())
	rootCmd.AddCommand(newCreateAdminCmd())
	rootCmd.AddCommand(newMigrateCmd())

	return rootCmd
}

func newParseUrlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-url <url>",
		Short: "Print the content reference for a social media link",
		Args:  cobra.ExactArgs(1),
		// Parsing is offline: no config needed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := url_embeds.Parse(args[0])
			out := struct {
				url_embeds.ContentReference
				PreviewThumbnailUrl string `json:"previewThumbnailUrl,omitempty"`
			}{ContentReference: ref}
			out.PreviewThumbnailUrl, _ = url_embeds.ResolveThumbnail(args[0])

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var email, password, firstName string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a dashboard account, even when registration is disabled",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := rcontext.Background("create-admin")
			user, err := auth_controller.CreateUser(ctx, email, password, firstName)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %s for %s\n", user.Id, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address to log in with")
	cmd.Flags().StringVar(&password, "password", "", "Password, at least 6 characters")
	cmd.Flags().StringVar(&firstName, "first-name", "", "Name shown in the dashboard")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("first-name")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the postgres schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Get().Database
			if conf.Type != config.DatabaseTypePostgres {
				return fmt.Errorf("database type is %q: nothing to migrate", conf.Type)
			}
			logrus.Info("Running migrations from ", migrationsPath)
			if err := database.Migrate(conf.Postgres, migrationsPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
			return nil
		},
	}
	cmd.Flags().StringVar(&migrationsPath, "migrations", config.DefaultMigrationsPath, "The path for the migrations folder")

	return cmd
}
