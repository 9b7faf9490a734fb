package httpclient

import "net/http"

// HTTPClient is the transport seam: production code hands in *http.Client,
// tests hand in a stub.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
