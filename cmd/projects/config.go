package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/projects/internal/model"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking config %s: %w", path, err)
			}

			if err := model.SaveConfig(path, model.DefaultAppConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config:           %s\n", opts.configPath())
			fmt.Fprintf(out, "database.driver:  %s\n", cfg.Database.Driver)
			if cfg.Database.Driver == model.DriverPostgres {
				fmt.Fprintf(out, "database.host:    %s\n", cfg.Database.Host)
				fmt.Fprintf(out, "database.port:    %d\n", cfg.Database.Port)
				fmt.Fprintf(out, "database.user:    %s\n", cfg.Database.User)
				fmt.Fprintf(out, "database.name:    %s\n", cfg.Database.Name)
				fmt.Fprintf(out, "database.sslmode: %s\n", cfg.Database.SSLMode)
			} else {
				fmt.Fprintf(out, "database.path:    %s\n", cfg.Database.Path)
			}
			fmt.Fprintf(out, "log.level:        %s\n", cfg.Log.Level)
			fmt.Fprintf(out, "log.format:       %s\n", cfg.Log.Format)
			fmt.Fprintf(out, "log.file:         %s\n", cfg.Log.File)
			return nil
		},
	}
	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
