package store

import (
	"errors"
	"strings"
)

var ErrRequiredFieldMissing = errors.New("required field missing")

// ValidationError is returned by Add when a required text field is blank.
// It matches ErrRequiredFieldMissing with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrRequiredFieldMissing.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrRequiredFieldMissing
}

type textField struct {
	name  string
	value string
}

func requireText(fields ...textField) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
