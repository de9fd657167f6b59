// Package cli реализует команды клиента wordcards на cobra.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/iudanet/wordcards/internal/client/app"
	"github.com/iudanet/wordcards/internal/client/iocli"
	"github.com/iudanet/wordcards/internal/config"
	"github.com/iudanet/wordcards/internal/logger"
)

// skipApp помечает команды, которым не нужна база устройства
const skipApp = "skip-app"

// BuildInfo version information set via ldflags during build
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// Cli держит открытое приложение на время одной команды
type Cli struct {
	io     iocli.IO
	app    *app.App
	logger *zap.Logger
	viper  *viper.Viper
	build  BuildInfo

	configFile string
	envFile    string
}

// Execute выполняет команду и всегда закрывает базу устройства,
// в том числе когда команда вернула ошибку.
func Execute(ctx context.Context, io iocli.IO, build BuildInfo, args []string) error {
	root, c := newRootCommand(io, build)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if cerr := c.close(); err == nil {
		err = cerr
	}
	return err
}

// newRootCommand собирает дерево команд. Конфигурация читается в PersistentPreRunE:
// файл, затем окружение WORDCARDS_*, затем флаги.
func newRootCommand(io iocli.IO, build BuildInfo) (*cobra.Command, *Cli) {
	c := &Cli{
		io:     io,
		logger: zap.NewNop(),
		viper:  viper.New(),
		build:  build,
	}

	root := &cobra.Command{
		Use:           "wordcards",
		Short:         "Vocabulary flashcards in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipApp] == "true" {
				return nil
			}
			return c.open(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configFile, "config", "", "config file (yaml, toml or json)")
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("server", "", "server URL")
	flags.String("db", "", "path to the device database")
	flags.String("prefs", "", "path to the preferences file")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"server_url": "server",
		"db_path":    "db",
		"prefs_path": "prefs",
		"log_level":  "log-level",
	} {
		_ = c.viper.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		c.newLoginCommand(),
		c.newLogoutCommand(),
		c.newStatusCommand(),
		c.newListCommand(),
		c.newAddCommand(),
		c.newUpdateCommand(),
		c.newDeleteCommand(),
		c.newStudyCommand(),
		c.newMigrateCommand(),
		c.newPrefsCommand(),
		c.newVersionCommand(),
	)
	return root, c
}

func (c *Cli) open(cmd *cobra.Command) error {
	if err := config.LoadEnvFile(c.envFile); err != nil {
		return err
	}

	cfg, err := config.LoadClient(c.viper, c.configFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	c.logger = log

	a, err := app.Open(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	c.app = a

	res, err := a.Start(cmd.Context())
	if err != nil {
		c.io.Printf("Warning: could not move local flashcards to your account: %v\n", err)
	} else if res.Migrated > 0 {
		c.io.Printf("Moved %d local flashcard(s) to your account.\n", res.Migrated)
	}
	return nil
}

func (c *Cli) close() error {
	var err error
	if c.app != nil {
		err = c.app.Close()
		c.app = nil
	}
	_ = c.logger.Sync()
	return err
}

// sessionError превращает сообщение в State.Error в ошибку команды
func (c *Cli) sessionError() error {
	if msg := c.app.Session.State().Error; msg != "" {
		return errors.New(msg)
	}
	return nil
}

func (c *Cli) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Annotations: map[string]string{skipApp: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.io.Println("WordCards Client")
			c.io.Printf("Version:    %s\n", c.build.Version)
			c.io.Printf("Build Date: %s\n", c.build.BuildDate)
			c.io.Printf("Git Commit: %s\n", c.build.GitCommit)
			return nil
		},
	}
}
