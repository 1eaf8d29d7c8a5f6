package openai

import (
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// ClientConfig holds everything needed to construct the provider client.
type ClientConfig struct {
	// APIKey is the provider credential. Required.
	APIKey string
	// BaseURL overrides the provider endpoint, used by tests.
	BaseURL string
}

// NewClient constructs the shared provider client. The client is read-only
// after construction and safe for concurrent reuse; its lifetime equals the
// process lifetime. Construction fails fast on a missing credential so a
// misconfigured deployment dies at startup instead of on first request.
func NewClient(cfg ClientConfig) (*openai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return openai.NewClientWithConfig(clientConfig), nil
}
