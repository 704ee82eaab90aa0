package solace

import (
	"fmt"
	"strings"
)

// ValidateMoodScore checks that a mood score is on the 1-10 scale.
func ValidateMoodScore(score int) error {
	if score < MoodScoreMin || score > MoodScoreMax {
		return fmt.Errorf("mood score must be in [%d, %d], got %d: %w", MoodScoreMin, MoodScoreMax, score, ErrValidation)
	}
	return nil
}

// ValidateRegistration checks the constraints on a new user registration.
// Consent is mandatory: the service stores wellness data.
func ValidateRegistration(email string, consentGiven bool) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email must not be empty: %w", ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("malformed email %q: %w", email, ErrValidation)
	}
	if !consentGiven {
		return fmt.Errorf("consent is required: %w", ErrValidation)
	}
	return nil
}

// ValidateCopingTool checks the constraints on a coping tool write.
func ValidateCopingTool(tool CopingTool) error {
	if strings.TrimSpace(tool.Title) == "" {
		return fmt.Errorf("coping tool title must not be empty: %w", ErrValidation)
	}
	if tool.Duration < 0 {
		return fmt.Errorf("coping tool duration must be non-negative: %w", ErrValidation)
	}
	return nil
}
