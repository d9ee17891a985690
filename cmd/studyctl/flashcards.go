package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	flashcardsCmd := &cobra.Command{Use: "flashcards", Short: "Flashcard operations"}

	var subject string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/flashcards", apiFlag)
			if subject != "" {
				url = fmt.Sprintf("%s?subject=%s", url, subject)
			}
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&subject, "subject", "s", "", "Filter by subject")
	flashcardsCmd.AddCommand(listCmd)

	var genSubject, topic, content string
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate flashcards from study material",
		RunE: func(cmd *cobra.Command, args []string) error {
			if genSubject == "" || topic == "" || content == "" {
				return fmt.Errorf("--subject, --topic and --content required")
			}
			payload := map[string]interface{}{
				"subject": genSubject,
				"topic":   topic,
				"content": content,
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/flashcards/generate", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	generateCmd.Flags().StringVarP(&genSubject, "subject", "s", "", "Subject (required)")
	generateCmd.Flags().StringVarP(&topic, "topic", "t", "", "Topic (required)")
	generateCmd.Flags().StringVarP(&content, "content", "c", "", "Source material (required)")
	_ = generateCmd.MarkFlagRequired("subject")
	_ = generateCmd.MarkFlagRequired("topic")
	_ = generateCmd.MarkFlagRequired("content")
	flashcardsCmd.AddCommand(generateCmd)

	rootCmd.AddCommand(flashcardsCmd)
}
