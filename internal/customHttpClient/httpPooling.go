package customHttpClient

import (
	"net/http"
	"sync"

	"github.com/avanekar/PdfChatAPI/internal/config"
)

var (
	once   sync.Once
	client *http.Client
)

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

// GetClient returns the shared pooled client used for QA backend calls.
// Ingestion uploads can be slow so the timeout is generous; per-request
// contexts are the tighter bound.
func GetClient() *http.Client {
	once.Do(func() {
		client = &http.Client{
			Transport: customTransport,
			Timeout:   config.BackendCallTimeout,
		}
	})
	return client
}
