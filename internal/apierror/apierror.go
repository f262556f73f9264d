// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apierror defines the gateway failure taxonomy and the single place
// where a failure kind is mapped to a transport status code.
package apierror

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/social-widgets/event-widget-service/internal/logging"
)

// APIError is a terminal request failure. It carries the HTTP status the
// boundary replies with and the client facing message.
type APIError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Authorization and validation failures, detected before any persistence or
// upstream call is made.
var (
	ErrRequestIncomplete  = &APIError{Code: http.StatusUnauthorized, Message: "Request Incomplete"}
	ErrMissingValue       = &APIError{Code: http.StatusUnauthorized, Message: "Missing Value"}
	ErrInvalidInstance    = &APIError{Code: http.StatusForbidden, Message: "Invalid Instance"}
	ErrBadlyFormedRequest = &APIError{Code: http.StatusBadRequest, Message: "Badly Formed Request"}
	ErrMissingFields      = &APIError{Code: http.StatusBadRequest, Message: "Missing Settings or Events"}
)

func Forbidden(message string) *APIError {
	return &APIError{Code: http.StatusForbidden, Message: message}
}

func NotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

func BadGateway(message string) *APIError {
	return &APIError{Code: http.StatusBadGateway, Message: message}
}

func Internal(message string) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Message: message}
}

// Write replies with the failure's status and message body. Errors outside
// the taxonomy are never leaked to the client, they surface as a plain 500.
func Write(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	apiErr := &APIError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
	if !errors.As(err, &apiErr) {
		logger.Errorf("unmapped error reached the boundary: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Code)
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logger.Errorf("failed to encode error response: %v", err)
	}
}
