package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	chatCmd := &cobra.Command{Use: "chat", Short: "Tutor chat operations"}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation history",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/messages", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	chatCmd.AddCommand(historyCmd)

	sendCmd := &cobra.Command{
		Use:   "send MESSAGE...",
		Short: "Send a message to the tutor",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]interface{}{"content": strings.Join(args, " ")}
			data, err := doPostJSON(fmt.Sprintf("%s/api/messages", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	chatCmd.AddCommand(sendCmd)

	rootCmd.AddCommand(chatCmd)
}
