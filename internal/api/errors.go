package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork marks transport-level failures: the request never produced an
// HTTP response (connection refused, DNS, canceled context). Distinct from
// HTTPError, where a response arrived but carried a failure status.
var ErrNetwork = errors.New("network failure")

// HTTPError is a received non-2xx response.
type HTTPError struct {
	Status int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http status %d", e.Status)
}

// IsInvalidCredentials reports whether err is the backend's bad-credentials
// answer to a login (400 or 401). Everything else is a generic failure.
func IsInvalidCredentials(err error) bool {
	var he *HTTPError
	if !errors.As(err, &he) {
		return false
	}
	return he.Status == http.StatusBadRequest || he.Status == http.StatusUnauthorized
}

// StatusOf extracts the HTTP status from err, or 0 when err is not an
// HTTPError.
func StatusOf(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status
	}
	return 0
}
