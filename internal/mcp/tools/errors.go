// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package tools

import "fmt"

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput     = "INVALID_INPUT"
	ErrCodeInferenceFailed  = "INFERENCE_FAILED"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ErrInvalidInput creates an INVALID_INPUT error.
func ErrInvalidInput(message string) error {
	return &CodedError{Code: ErrCodeInvalidInput, Message: message}
}

func errInference(err error) error {
	return &CodedError{Code: ErrCodeInferenceFailed, Message: "could not infer a schema", Cause: err}
}

func errGeneration(err error) error {
	return &CodedError{Code: ErrCodeGenerationFailed, Message: "could not render types", Cause: err}
}
