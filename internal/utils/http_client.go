// Package utils provides general-purpose helpers shared by the decoding core
// and its collaborators: local path translation, the outbound HTTP client and
// request identifiers.
package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultRetryWait is the initial back-off between retried requests.
const defaultRetryWait = 200 * time.Millisecond

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://tfs:8080/tfs/DefaultCollection", 30*time.Second, 2)
//	resp, err := client.R().Get("/VersionControl/v1.0/item.asmx")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. A trailing slash on baseURL is
// dropped so that request paths can always start with "/".
//
// Parameters:
//
//	baseURL - collection root of the version-control server
//	timeout - per-request timeout; zero leaves resty's default
//	retries - number of retries for failed requests; zero disables retrying
//
// Returns:
//
//	*HTTPClient - a ready-to-use HTTP client
func NewHTTPClient(baseURL string, timeout time.Duration, retries int) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("User-Agent", "tfinspect")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if retries > 0 {
		client.
			SetRetryCount(retries).
			SetRetryWaitTime(defaultRetryWait)
	}

	return &HTTPClient{Client: client}
}
