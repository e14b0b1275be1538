// Package bridge implements the platform capability interfaces on top of a
// JSON-over-HTTP upstream worker (the browser-automation side of the
// system). One client serves discovery, text generation, and publishing.
package bridge

import (
	"net/http"
	"time"

	"engage-api/internal/platform"
	pkgLog "engage-api/pkg/log"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Bridge struct {
	l       pkgLog.Logger
	client  *http.Client
	baseURL string
	apiKey  string
}

var _ platform.Discovery = (*Bridge)(nil)
var _ platform.TextGenerator = (*Bridge)(nil)
var _ platform.Publisher = (*Bridge)(nil)

func New(l pkgLog.Logger, cfg Config) *Bridge {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Bridge{
		l:       l,
		client:  &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
}
