package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhle/projects/internal/console"
	"github.com/nhle/projects/internal/credential"
	"github.com/nhle/projects/internal/logging"
	"github.com/nhle/projects/internal/model"
	"github.com/nhle/projects/internal/service"
	"github.com/nhle/projects/internal/store"
)

// options holds the global flag values.
type options struct {
	configFile string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage project records from an interactive menu",
		Long: `projects is a menu-driven console for adding, listing, selecting,
updating and deleting project records. Press Enter at the menu prompt to quit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default: ~/.config/projects/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database file, overriding the configured database")

	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newCredentialCmd())

	return cmd
}

func (o *options) configPath() string {
	if o.configFile != "" {
		return o.configFile
	}
	return model.DefaultConfigPath()
}

// loadConfig reads the config file and applies flag overrides.
func (o *options) loadConfig() (*model.AppConfig, error) {
	cfg, err := model.LoadConfig(o.configPath())
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.Database.Driver = model.DriverSQLite
		cfg.Database.Path = o.dbPath
	}
	return cfg, nil
}

func runConsole(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, cleanup, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := openStore(cfg.Database, logger)
	if err != nil {
		logger.Error("opening store", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		return err
	}
	defer s.Close()

	session := console.NewSession(service.New(s), cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	return session.Run(cmd.Context())
}

// openStore prepares driver-specific prerequisites and opens the store.
func openStore(cfg model.DatabaseConfig, logger *zap.Logger) (*store.SQLStore, error) {
	switch cfg.Driver {
	case model.DriverPostgres:
		creds, err := credential.Open(model.ConfigDir())
		if err != nil {
			return nil, err
		}
		password, err := creds.Get(credential.PostgresPasswordKey)
		switch {
		case errors.Is(err, credential.ErrNotFound):
			logger.Warn("no postgres password stored; connecting without one")
		case err != nil:
			return nil, err
		default:
			cfg.Password = password
		}
	default:
		if cfg.Path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
				return nil, fmt.Errorf("creating database directory: %w", err)
			}
		}
	}

	logger.Info("opening store", zap.String("driver", cfg.Driver))
	return store.Open(cfg)
}
