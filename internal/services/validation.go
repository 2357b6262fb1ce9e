package services

import (
	"strings"

	"github.com/vytor/founderlab/internal/errors"
	"github.com/vytor/founderlab/internal/models"
)

// StepStatus reports the outcome of one best-effort write.
type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepFailed  StepStatus = "failed"
	StepSkipped StepStatus = "skipped"
)

func statusOf(err error) StepStatus {
	if err != nil {
		return StepFailed
	}
	return StepOK
}

type field struct {
	name  string
	value string
}

// requireFields returns one VALIDATION_ERROR naming every blank field.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingFieldsError(missing...)
	}
	return nil
}

func validateSkillLevel(level string, required bool) error {
	if level == "" && !required {
		return nil
	}
	if !models.SkillLevel(level).Valid() {
		return errors.NewValidationError("skillLevel", "must be one of beginner, intermediate, advanced")
	}
	return nil
}

func validateLearningPreference(pref string) error {
	if pref == "" {
		return nil
	}
	if !models.LearningPreference(pref).Valid() {
		return errors.NewValidationError("learningPreference", "must be one of visual, hands_on, reading, auditory")
	}
	return nil
}
