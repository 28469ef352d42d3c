// Package catalog fetches firmware and installer catalogs over HTTP.
package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTP client settings used by NewClient.
const (
	// RequestTimeout bounds a single request, retries excluded.
	RequestTimeout = 60 * time.Second
	// RetryCount is the number of retries after the first attempt.
	RetryCount = 3
	// RetryWaitTime is the initial backoff between attempts.
	RetryWaitTime = 500 * time.Millisecond
	// RetryWaitTimeMax caps the backoff.
	RetryWaitTimeMax = 5 * time.Second
	// UserAgent is sent with every request.
	UserAgent = "mist"
)

// ErrUnexpectedStatus is returned when a catalog server answers with an error
// status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// NewClient returns an HTTP client that retries timeouts, rate limiting and
// server errors.
func NewClient() *resty.Client {
	c := resty.New()
	c.SetHeader("User-Agent", UserAgent)
	c.SetTimeout(RequestTimeout)
	c.SetRetryCount(RetryCount)
	c.SetRetryWaitTime(RetryWaitTime)
	c.SetRetryMaxWaitTime(RetryWaitTimeMax)
	c.AddRetryCondition(func(response *resty.Response, err error) bool {
		if response == nil {
			return err != nil
		}
		switch response.StatusCode() {
		case
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	})
	return c
}

func checkResponse(url string, response *resty.Response) error {
	if response.IsError() {
		return fmt.Errorf("%w: GET %s: %s", ErrUnexpectedStatus, url, response.Status())
	}
	return nil
}
