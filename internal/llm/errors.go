package llm

import "errors"

var (
	// ErrDisabled indicates generation was requested while llm.enabled is off.
	ErrDisabled = errors.New("text generation is disabled")

	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrAPI indicates the endpoint answered with an error status or body.
	ErrAPI = errors.New("generation api error")

	// ErrEmptyResponse indicates the reply carried no text block.
	ErrEmptyResponse = errors.New("no text in generation response")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
