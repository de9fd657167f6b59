package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/config"
	"github.com/iudanet/wordcards/internal/logger"
	"github.com/iudanet/wordcards/internal/server"
	"github.com/iudanet/wordcards/internal/server/handlers"
	"github.com/iudanet/wordcards/internal/server/storage/sqlstore"
)

// rootOptions общие флаги всех подкоманд
type rootOptions struct {
	viper      *viper.Viper
	configFile string
	envFile    string
}

func newRootCommand() *cobra.Command {
	o := &rootOptions{viper: viper.New()}

	root := &cobra.Command{
		Use:           "wordcards-server",
		Short:         "WordCards flashcard storage server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&o.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("address", "", "listen address, e.g. :8080")
	flags.String("db-driver", "", "sqlite or postgres")
	flags.String("db-dsn", "", "database DSN (file path for sqlite)")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"server.address": "address",
		"db.driver":      "db-driver",
		"db.dsn":         "db-dsn",
		"log_level":      "log-level",
	} {
		_ = o.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newServeCommand(o),
		newMigrateCommand(o),
		newTokenCommand(o),
		newVersionCommand(),
	)
	return root
}

func (o *rootOptions) load() (*config.ServerConfig, *zap.Logger, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadServer(o.viper, o.configFile)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func jwtConfig(cfg *config.ServerConfig) handlers.JWTConfig {
	return handlers.JWTConfig{Issuer: cfg.JWT.Issuer, Secret: []byte(cfg.JWT.Secret)}
}

func openStorage(ctx context.Context, cfg *config.ServerConfig, log *zap.Logger) (*sqlstore.Storage, error) {
	store, err := sqlstore.New(ctx, cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, err
	}
	log.Info("Database connected", zap.String("driver", cfg.DB.Driver))
	return store, nil
}

func newServeCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, log, err := o.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			store, err := openStorage(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Error("Failed to close database", zap.Error(err))
				}
			}()

			if cfg.DB.AutoMigrate {
				if err := store.Migrate(ctx); err != nil {
					return err
				}
			}

			srv := server.New(log, store, server.Options{
				JWT:             jwtConfig(cfg),
				Version:         Version,
				AllowedOrigins:  cfg.CORS.AllowedOrigins,
				RPS:             cfg.RateLimit.RPS,
				Burst:           cfg.RateLimit.Burst,
				ReadTimeout:     cfg.Server.ReadTimeout,
				WriteTimeout:    cfg.Server.WriteTimeout,
				ShutdownTimeout: cfg.Server.ShutdownTimeout,
			})

			log.Info("Starting WordCards server",
				zap.String("version", Version), zap.String("address", cfg.Server.Address))
			if err := srv.Run(ctx, cfg.Server.Address); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			log.Info("Server stopped")
			return nil
		},
	}
}

func newMigrateCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := o.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			store, err := openStorage(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
			return nil
		},
	}
}

func newTokenCommand(o *rootOptions) *cobra.Command {
	var (
		userID string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := o.load()
			if err != nil {
				return err
			}

			token, expiresAt, err := handlers.GenerateAccessToken(jwtConfig(cfg), userID, ttl)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, token)
			if !expiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", expiresAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id (token subject)")
	cmd.Flags().DurationVar(&ttl, "ttl", 30*24*time.Hour, "token lifetime, 0 for no expiry")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "WordCards Server\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", Version)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		},
	}
}
