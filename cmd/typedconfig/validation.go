package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator for command requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// sourceRequest describes where configuration is read from.
type sourceRequest struct {
	ConfigFile string `validate:"omitempty,filepath"`
	EnvPrefix  string `validate:"omitempty,uppercase,max=64"`
}

// getRequest is a single typed lookup.
type getRequest struct {
	Key  string `validate:"required,max=512"`
	Kind string `validate:"required,oneof=array bool int float float-inclusive float_inclusive string"`
}

// snapshotSaveRequest names a snapshot to record.
type snapshotSaveRequest struct {
	Name string `validate:"required,max=128"`
}

// snapshotRequest identifies a stored snapshot.
type snapshotRequest struct {
	ID string `validate:"required,uuid"`
}

// dbRequest locates the snapshot database.
type dbRequest struct {
	Path string `validate:"required"`
}

// formatValidationError renders validator errors as concise, user-facing text.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("invalid arguments:\n  - %s", strings.Join(messages, "\n  - "))
}

// formatFieldError creates a user-friendly message for one field.
func formatFieldError(fieldError validator.FieldError) string {
	field := fieldError.Field()
	value := fieldError.Value()

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", field, fieldError.Param(), value)
	case "uuid":
		return fmt.Sprintf("'%s' must be a snapshot ID, got '%v'", field, value)
	case "uppercase":
		return fmt.Sprintf("'%s' must be uppercase, got '%v'", field, value)
	case "max":
		return fmt.Sprintf("'%s' must be at most %s characters", field, fieldError.Param())
	case "filepath":
		return fmt.Sprintf("'%s' must be a valid file path, got '%v'", field, value)
	default:
		return fmt.Sprintf("'%s' failed validation '%s', got '%v'", field, fieldError.Tag(), value)
	}
}
