package httpx

import "net/http"

// Client is the transport seam for outbound classifier calls.
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
