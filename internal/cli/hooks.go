package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/githot/pkg/observability"
)

// installLogHooks routes HTTP and refresh hook events to logger.
func installLogHooks(logger *log.Logger) {
	observability.SetHTTPHooks(&logHTTPHooks{logger: logger})
	observability.SetRefreshHooks(&logRefreshHooks{logger: logger})
}

// logHTTPHooks reports outbound API calls at debug level.
type logHTTPHooks struct {
	logger *log.Logger
}

func (h *logHTTPHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *logHTTPHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (h *logHTTPHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("request failed", "method", method, "host", host, "path", path, "err", err)
}

// logRefreshHooks reports refresh cycle boundaries at debug level.
// Failures are logged by the orchestrator's error handler.
type logRefreshHooks struct {
	logger *log.Logger
}

func (h *logRefreshHooks) OnRefreshStart(_ context.Context, flow string) {
	h.logger.Debug("refresh start", "flow", flow)
}

func (h *logRefreshHooks) OnRefreshComplete(_ context.Context, flow string, items int, d time.Duration, err error) {
	if err != nil {
		return
	}
	h.logger.Debug("refresh complete", "flow", flow, "items", items, "took", d.Round(time.Millisecond))
}
