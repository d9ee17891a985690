package validate

import (
	"fmt"
	"regexp"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func Range(field string, v, min, max int) error {
	if v < min || v > max {
		return fmt.Errorf("%s must be between %d and %d", field, min, max)
	}
	return nil
}

// -------- Request specific helpers ----------

// CreateStudyPlan validates input for manually creating a plan.
func CreateStudyPlan(title, subject, startDate, endDate string) error {
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if err := NonEmpty("subject", subject); err != nil {
		return err
	}
	if err := NonEmpty("startDate", startDate); err != nil {
		return err
	}
	return NonEmpty("endDate", endDate)
}

// PlanStatus rejects status values outside the known set.
func PlanStatus(status string) error {
	switch status {
	case "active", "completed", "paused":
		return nil
	}
	return fmt.Errorf("status must be one of active, completed, paused")
}

// GeneratePlan validates input for the AI plan generation path.
func GeneratePlan(subject string, topics []string, daysAvailable, hoursPerDay int) error {
	if err := NonEmpty("subject", subject); err != nil {
		return err
	}
	if len(topics) == 0 {
		return fmt.Errorf("topics is required")
	}
	if err := Range("daysAvailable", daysAvailable, 1, 365); err != nil {
		return err
	}
	return Range("hoursPerDay", hoursPerDay, 1, 24)
}

// GenerateQuiz validates input for the AI quiz generation path.
func GenerateQuiz(title, subject string, numberOfQuestions int) error {
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if err := NonEmpty("subject", subject); err != nil {
		return err
	}
	return Range("numberOfQuestions", numberOfQuestions, 1, 50)
}

// GenerateFlashcards validates input for the AI flashcard generation path.
func GenerateFlashcards(subject, topic, content string) error {
	if err := NonEmpty("subject", subject); err != nil {
		return err
	}
	if err := NonEmpty("topic", topic); err != nil {
		return err
	}
	return NonEmpty("content", content)
}

// CreateStudySession validates input for recording a session.
func CreateStudySession(subject, topic string, duration int) error {
	if err := NonEmpty("subject", subject); err != nil {
		return err
	}
	if err := NonEmpty("topic", topic); err != nil {
		return err
	}
	if duration < 1 {
		return fmt.Errorf("duration must be at least 1 minute")
	}
	return nil
}
