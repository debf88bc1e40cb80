package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound = errors.New("server not found")
	ErrScanInProgress = errors.New("a scan cycle is already in progress")
)

type ElasticSearchError struct {
	StatusCode int
	Type       string
	Reason     string
}

func (e *ElasticSearchError) Error() string {
	return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Type, e.Reason)
}

func NewElasticSearchError(statusCode int, errType string, reason string) error {
	return &ElasticSearchError{
		StatusCode: statusCode,
		Type:       errType,
		Reason:     reason,
	}
}
