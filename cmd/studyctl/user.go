package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	userCmd := &cobra.Command{Use: "user", Short: "Demo user operations"}

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show the demo user",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/user", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	userCmd.AddCommand(getCmd)

	var name, email string
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update demo user fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{}
			if name != "" {
				payload["name"] = name
			}
			if email != "" {
				payload["email"] = email
			}
			if len(payload) == 0 {
				return fmt.Errorf("nothing to update; pass --name or --email")
			}
			data, err := doPatchJSON(fmt.Sprintf("%s/api/user", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	updateCmd.Flags().StringVarP(&name, "name", "n", "", "Display name")
	updateCmd.Flags().StringVarP(&email, "email", "e", "", "Email address")
	userCmd.AddCommand(updateCmd)

	rootCmd.AddCommand(userCmd)
}
