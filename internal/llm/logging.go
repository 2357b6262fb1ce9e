package llm

import (
	"context"
	"time"

	"github.com/vytor/founderlab/internal/logger"
)

// LoggingProvider is a decorator that logs latency and token usage of every call.
type LoggingProvider struct {
	inner Provider
}

// WithLogging wraps a Provider with call logging.
func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	log := logger.FromContext(ctx).WithPrefix("llm").WithFields(map[string]any{
		"purpose": PurposeFrom(ctx),
		"model":   resolveModel(req.Model, l.inner.ModelID()),
	})
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	latency := time.Since(start).Milliseconds()
	if err != nil {
		log.WithError(err).Warn("completion failed after %dms", latency)
		return nil, err
	}
	log.Debug("completion ok in %dms: in=%d out=%d tokens",
		latency, resp.Usage.InputTokens, resp.Usage.OutputTokens)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
