package services

import (
	"errors"

	"project-lookup-api/internal/repositories"
)

// RecognizedFailure is a failure the store classified itself (throttling,
// access denied, missing table). Its message is safe to return to callers.
type RecognizedFailure struct {
	Code    string
	Message string
}

func (f *RecognizedFailure) Error() string {
	return f.Message
}

// UnexpectedFailure is any other fault: transport errors, decode errors,
// misconfiguration or programming mistakes.
type UnexpectedFailure struct {
	Message string
}

func (f *UnexpectedFailure) Error() string {
	return f.Message
}

// ClassifyFailure maps an error into one of the two failure variants.
// Errors that already are a variant are returned unchanged.
func ClassifyFailure(err error) error {
	if err == nil {
		return nil
	}

	var recognized *RecognizedFailure
	if errors.As(err, &recognized) {
		return recognized
	}

	var unexpected *UnexpectedFailure
	if errors.As(err, &unexpected) {
		return unexpected
	}

	var svcErr *repositories.ServiceError
	if errors.As(err, &svcErr) {
		return &RecognizedFailure{Code: svcErr.Code, Message: svcErr.Error()}
	}

	return &UnexpectedFailure{Message: err.Error()}
}
