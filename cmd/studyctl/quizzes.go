package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	quizzesCmd := &cobra.Command{Use: "quizzes", Short: "Quiz operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/quizzes", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	quizzesCmd.AddCommand(listCmd)

	getCmd := &cobra.Command{
		Use:   "get QUIZ_ID",
		Short: "Get quiz by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/quizzes/%s", apiFlag, args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	quizzesCmd.AddCommand(getCmd)

	var title, subject, content string
	var numQuestions int
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a quiz from study material",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" || subject == "" {
				return fmt.Errorf("--title and --subject required")
			}
			payload := map[string]interface{}{
				"title":             title,
				"subject":           subject,
				"numberOfQuestions": numQuestions,
			}
			if content != "" {
				payload["content"] = content
			}
			data, err := doPostJSON(fmt.Sprintf("%s/api/quizzes/generate", apiFlag), payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	generateCmd.Flags().StringVarP(&title, "title", "t", "", "Quiz title (required)")
	generateCmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject (required)")
	generateCmd.Flags().StringVarP(&content, "content", "c", "", "Source material")
	generateCmd.Flags().IntVarP(&numQuestions, "questions", "q", 10, "Number of questions")
	_ = generateCmd.MarkFlagRequired("title")
	_ = generateCmd.MarkFlagRequired("subject")
	quizzesCmd.AddCommand(generateCmd)

	rootCmd.AddCommand(quizzesCmd)
}
