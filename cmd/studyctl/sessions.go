package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	sessionsCmd := &cobra.Command{Use: "sessions", Short: "Study session operations"}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/study-sessions", apiFlag)
			if limit > 0 {
				url = fmt.Sprintf("%s?limit=%d", url, limit)
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "l", 0, "Max sessions to return")
	sessionsCmd.AddCommand(listCmd)

	var subject, topic, notes string
	var duration int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" || topic == "" || duration <= 0 {
				return fmt.Errorf("--subject, --topic and a positive --duration required")
			}
			payload := map[string]interface{}{
				"subject":  subject,
				"topic":    topic,
				"duration": duration,
			}
			if notes != "" {
				payload["notes"] = notes
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/study-sessions", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	addCmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject (required)")
	addCmd.Flags().StringVarP(&topic, "topic", "t", "", "Topic (required)")
	addCmd.Flags().IntVarP(&duration, "duration", "d", 0, "Duration in minutes (required)")
	addCmd.Flags().StringVarP(&notes, "notes", "n", "", "Session notes")
	_ = addCmd.MarkFlagRequired("subject")
	_ = addCmd.MarkFlagRequired("topic")
	_ = addCmd.MarkFlagRequired("duration")
	sessionsCmd.AddCommand(addCmd)

	rootCmd.AddCommand(sessionsCmd)
}
