package validate

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	if err := Email("alex@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := Email("bad email"); err == nil {
		t.Fatalf("expected error for invalid email")
	}
	if err := Email(""); err == nil {
		t.Fatalf("expected error for empty email")
	}
	if err := Email(strings.Repeat("a", 320) + "@x.y"); err == nil {
		t.Fatalf("expected error for oversized email")
	}
}

func TestGenerateQuiz(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		subject     string
		n           int
		expectError bool
	}{
		{name: "valid", title: "Kinematics", subject: "Physics", n: 10},
		{name: "missing title", subject: "Physics", n: 10, expectError: true},
		{name: "missing subject", title: "Kinematics", n: 10, expectError: true},
		{name: "zero questions", title: "Kinematics", subject: "Physics", n: 0, expectError: true},
		{name: "too many questions", title: "Kinematics", subject: "Physics", n: 51, expectError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GenerateQuiz(tt.title, tt.subject, tt.n)
			if tt.expectError && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestGeneratePlan(t *testing.T) {
	if err := GeneratePlan("Physics", []string{"Kinematics"}, 14, 2); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if err := GeneratePlan("Physics", nil, 14, 2); err == nil {
		t.Fatalf("expected error for empty topics")
	}
	if err := GeneratePlan("Physics", []string{"Kinematics"}, 0, 2); err == nil {
		t.Fatalf("expected error for zero days")
	}
	if err := GeneratePlan("Physics", []string{"Kinematics"}, 14, 25); err == nil {
		t.Fatalf("expected error for impossible hours per day")
	}
}

func TestPlanStatus(t *testing.T) {
	for _, status := range []string{"active", "completed", "paused"} {
		if err := PlanStatus(status); err != nil {
			t.Fatalf("valid status %q rejected: %v", status, err)
		}
	}
	if err := PlanStatus("abandoned"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestCreateStudySession(t *testing.T) {
	if err := CreateStudySession("Physics", "Kinematics", 90); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if err := CreateStudySession("", "Kinematics", 90); err == nil {
		t.Fatalf("expected error for missing subject")
	}
	if err := CreateStudySession("Physics", "Kinematics", 0); err == nil {
		t.Fatalf("expected error for zero duration")
	}
}

func TestGenerateFlashcards(t *testing.T) {
	if err := GenerateFlashcards("Chemistry", "Bonding", "notes"); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if err := GenerateFlashcards("Chemistry", "Bonding", ""); err == nil {
		t.Fatalf("expected error for missing content")
	}
}
