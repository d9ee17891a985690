package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Show subject progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/progress", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(progressCmd)

	achievementsCmd := &cobra.Command{
		Use:   "achievements",
		Short: "Show unlocked achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/achievements", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(achievementsCmd)
}
