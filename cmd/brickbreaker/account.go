package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/auth"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage accounts",
	Long: `Create, rename or delete an account from the command line.
Passwords are always prompted, never passed as flags.

Examples:
  brickbreaker account register alice
  brickbreaker account rename alice alicia
  brickbreaker account delete alice`,
}

var accountRegisterCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withAccounts(func(svc *auth.Service) error {
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}
			confirm, err := readPassword("Confirm password: ")
			if err != nil {
				return err
			}
			id, err := svc.Register(args[0], password, confirm)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", id.Username)
			return nil
		})
	},
}

var accountRenameCmd = &cobra.Command{
	Use:   "rename <username> <new-username>",
	Short: "Rename an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return withAccounts(func(svc *auth.Service) error {
			password, err := readPassword(fmt.Sprintf("Password for %s: ", args[0]))
			if err != nil {
				return err
			}
			id, err := svc.Authenticate(args[0], password)
			if err != nil {
				return err
			}
			renamed, err := svc.Rename(id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Renamed %s to %s\n", id.Username, renamed.Username)
			return nil
		})
	},
}

var accountDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an account and its scores",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withAccounts(func(svc *auth.Service) error {
			password, err := readPassword(fmt.Sprintf("Password for %s: ", args[0]))
			if err != nil {
				return err
			}
			id, err := svc.Authenticate(args[0], password)
			if err != nil {
				return err
			}
			if err := svc.Delete(id, password); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", id.Username)
			return nil
		})
	},
}

func init() {
	accountCmd.AddCommand(accountRegisterCmd, accountRenameCmd, accountDeleteCmd)
}

func withAccounts(fn func(*auth.Service) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(auth.NewService(store))
}
