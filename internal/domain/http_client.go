package domain

import (
	"net/http"
)

//go:generate mockgen -destination mocks/mock_http_client.go -package mocks github.com/schedmail/email-worker/internal/domain HTTPClient

// HTTPClient defines the interface for HTTP operations. A single
// *http.Client instance is shared by every pipeline in a run.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
