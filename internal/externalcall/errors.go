package externalcall

import "fmt"

// RemoteError is returned when the upstream API answered with a non-2xx
// status. 4xx and 5xx are deliberately not distinguished; callers that
// need to branch inspect StatusCode.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}
