package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/akolanti/RagAPI/internal/config"
)

var (
	pooledOnce   sync.Once
	pooledClient *http.Client
)

// GetPooledClient returns the shared HTTP client for model backend traffic.
// Generation and model pulls can run for minutes, so the client itself has no
// timeout; callers bound requests with contexts.
func GetPooledClient() *http.Client {
	pooledOnce.Do(func() {
		pooledClient = &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        config.MaxIdleConns,
				MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
				IdleConnTimeout:     config.IdleConnTimeout,
			},
		}
	})
	return pooledClient
}
