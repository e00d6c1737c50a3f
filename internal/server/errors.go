// Package server provides the HTTP REST API for photo analysis.
package server

import (
	"errors"
	"net/http"

	"github.com/d-p-harms/photoranker/internal/pipeline"
)

// Error kinds exposed in API error envelopes.
const (
	KindInvalidArgument = "invalid-argument"
	KindInternal        = "internal"
)

// apiError carries the kind and client-facing message of a failed request.
type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return e.Kind + ": " + e.Message
}

func invalidArgument(message string) *apiError {
	return &apiError{Kind: KindInvalidArgument, Message: message}
}

// classify maps an error to its API representation. Pipeline validation
// errors are the caller's fault; everything else is internal.
func classify(err error) *apiError {
	var api *apiError
	if errors.As(err, &api) {
		return api
	}

	var emptyErr *pipeline.EmptyBatchError
	var sizeErr *pipeline.BatchSizeError
	if errors.As(err, &emptyErr) || errors.As(err, &sizeErr) {
		return &apiError{Kind: KindInvalidArgument, Message: err.Error()}
	}

	return &apiError{Kind: KindInternal, Message: "analysis failed; please try again"}
}

// HTTPStatus returns the HTTP status code for an error kind.
func HTTPStatus(kind string) int {
	switch kind {
	case KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
