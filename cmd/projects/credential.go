package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/projects/internal/credential"
	"github.com/nhle/projects/internal/model"
)

func newCredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credential",
		Short: "Manage the PostgreSQL password in the system keyring",
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Read the PostgreSQL password from stdin and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "PostgreSQL password: ")
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				if err != nil {
					return fmt.Errorf("reading password: %w", err)
				}
				return fmt.Errorf("password must not be empty")
			}

			creds, err := credential.Open(model.ConfigDir())
			if err != nil {
				return err
			}
			if err := creds.Set(credential.PostgresPasswordKey, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password stored.")
			return nil
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the stored PostgreSQL password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := credential.Open(model.ConfigDir())
			if err != nil {
				return err
			}
			if err := creds.Delete(credential.PostgresPasswordKey); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password removed.")
			return nil
		},
	}

	cmd.AddCommand(setCmd, deleteCmd)
	return cmd
}
