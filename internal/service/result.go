package service

import (
	"fmt"

	"github.com/codeward/backend/internal/ratelimit"
)

// ResultKind classifies a submission outcome for the HTTP adapter. It never
// appears in the response body: the UI branches only on Success and the
// presence of field Errors.
type ResultKind int

const (
	ResultOK ResultKind = iota
	// ResultSimulated is the degraded-mode success (no store configured).
	ResultSimulated
	ResultInvalid
	ResultRateLimited
	ResultStorageUnavailable
	ResultStoreUnavailable
	ResultInternal
)

// SubmitResult is the uniform outcome of a public form submission.
type SubmitResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`

	Kind ResultKind `json:"-"`
}

// User-facing messages. Operational failures stay distinguishable for
// observability without leaking internals.
const (
	msgValidation          = "Please correct the highlighted fields and try again."
	msgStorageOutage       = "We could not store your file right now. Please try again later."
	msgStoreOutage         = "Our database is temporarily unavailable. Please try again later."
	msgInternal            = "Something went wrong. Please try again later."
	msgSimulated           = "Submission accepted (demo mode: no database configured, nothing was saved)."
	msgContactReceived     = "Thanks for reaching out! We will get back to you shortly."
	msgApplicationReceived = "Thanks for applying! Our team will review your application and be in touch."
)

func invalidResult(errs fieldErrors) SubmitResult {
	return SubmitResult{Message: msgValidation, Errors: errs, Kind: ResultInvalid}
}

func rateLimitedResult(retryAfter int) SubmitResult {
	return SubmitResult{
		Message: fmt.Sprintf("You just submitted a moment ago. Please wait %s before trying again.",
			ratelimit.FormatRetryAfter(retryAfter)),
		Kind: ResultRateLimited,
	}
}

func simulatedResult() SubmitResult {
	return SubmitResult{Success: true, Message: msgSimulated, Kind: ResultSimulated}
}

func storageUnavailableResult() SubmitResult {
	return SubmitResult{Message: msgStorageOutage, Kind: ResultStorageUnavailable}
}

func storeUnavailableResult() SubmitResult {
	return SubmitResult{Message: msgStoreOutage, Kind: ResultStoreUnavailable}
}
