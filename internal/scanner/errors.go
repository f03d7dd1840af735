package scanner

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by Analyze when the session was cancelled while
// the attempt was in flight. The attempt's result, if any, has been discarded.
var ErrCancelled = errors.New("scan cancelled")

// ConnectivityError means the analysis server failed its health check. The
// attempt can be retried by the user once the server or network is fixed;
// the orchestrator never retries on its own.
type ConnectivityError struct {
	Detail string
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach the analysis server (%s); check your server and network settings", e.Detail)
}

// PreparationError means the captured photo could not be decoded or
// re-encoded. This is fatal to the attempt; the user has to take a new photo.
type PreparationError struct {
	Err error
}

func (e *PreparationError) Error() string {
	return fmt.Sprintf("could not prepare the captured photo: %v", e.Err)
}

func (e *PreparationError) Unwrap() error { return e.Err }

// UploadError means the analysis upload failed in transit or the server
// answered with an error. Recoverable: the user may retry the scan.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("image analysis failed: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }
