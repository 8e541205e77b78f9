package analyzer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/seo-optimizer/aiready/fetcher"
)

// ErrorKind is the user-facing class of a failed analysis
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid-input"
	KindUnreachable  ErrorKind = "unreachable"
	KindTimeout      ErrorKind = "timeout"
	KindBlocked      ErrorKind = "blocked"
	KindInternal     ErrorKind = "internal"
)

// AnalysisError is returned for every failed analysis
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Status maps the kind to an HTTP status code
func (e *AnalysisError) Status() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUnreachable:
		return http.StatusBadGateway
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindBlocked:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func invalidInput(format string, args ...any) *AnalysisError {
	return &AnalysisError{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func internalError(err error) *AnalysisError {
	return &AnalysisError{Kind: KindInternal, Message: "Internal analysis error", Err: err}
}

// blockingStatuses are upstream responses that mean the site refused us
var blockingStatuses = map[int]bool{
	http.StatusUnauthorized:               true,
	http.StatusForbidden:                  true,
	http.StatusTooManyRequests:            true,
	http.StatusUnavailableForLegalReasons: true,
}

// classifyFetchError turns a fetch failure into a user-facing AnalysisError
func classifyFetchError(err error) *AnalysisError {
	var fetchErr *fetcher.FetchError
	if !errors.As(err, &fetchErr) {
		if errors.Is(err, context.DeadlineExceeded) {
			return &AnalysisError{Kind: KindTimeout, Message: "The site took too long to respond", Err: err}
		}
		return internalError(err)
	}

	switch fetchErr.Kind {
	case fetcher.KindTimeout:
		return &AnalysisError{Kind: KindTimeout, Message: "The site took too long to respond", Err: err}
	case fetcher.KindDNS:
		return &AnalysisError{Kind: KindUnreachable, Message: "Couldn't reach the site: the domain name could not be resolved", Err: err}
	case fetcher.KindConnectionRefused:
		return &AnalysisError{Kind: KindUnreachable, Message: "Couldn't reach the site: the connection was refused", Err: err}
	case fetcher.KindTLS:
		return &AnalysisError{Kind: KindUnreachable, Message: "Couldn't reach the site: its security certificate could not be verified", Err: err}
	case fetcher.KindEmptyResponse:
		return &AnalysisError{Kind: KindUnreachable, Message: "Couldn't reach the site: it returned an empty page", Err: err}
	case fetcher.KindHTTPStatus:
		if blockingStatuses[fetchErr.StatusCode] {
			return &AnalysisError{
				Kind:    KindBlocked,
				Message: fmt.Sprintf("The site blocked the request (HTTP %d)", fetchErr.StatusCode),
				Err:     err,
			}
		}
		return &AnalysisError{
			Kind:    KindUnreachable,
			Message: fmt.Sprintf("Couldn't reach the site: it responded with HTTP %d", fetchErr.StatusCode),
			Err:     err,
		}
	default:
		return &AnalysisError{Kind: KindUnreachable, Message: "Couldn't reach the site", Err: err}
	}
}
