package client

import (
	"context"
	"time"

	"stundenmanager/config"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// Client is a minimal interface to allow mocking in tests.
type Client interface {
	Post(ctx context.Context, tag string, message any) error
	Close() error
}

// FluentdClient implements Client using fluent-logger-golang.
type FluentdClient struct {
	client    *fluent.Fluent
	tagPrefix string
}

// NewFluentdClient returns a forward client, or a NoopClient when FLUENTD.ENABLED is false.
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (Client, func(), error) {
	if !config.Fluentd.Enabled {
		logger.Info("Fluentd disabled, using noop client")
		return &NoopClient{}, func() {}, nil
	}
	prefix := "stundenmanager"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		Async:      true,
	})
	if err != nil {
		logger.Error("failed to create Fluentd client", zap.Error(err))
		return nil, nil, err
	}
	c := &FluentdClient{client: f, tagPrefix: prefix}
	cleanup := func() {
		if err := c.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return c, cleanup, nil
}

func (c *FluentdClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post sends a record to Fluentd; the TagPrefix is applied by fluent-logger-golang.
// fluent-logger-golang doesn't support context cancellation, ctx is kept for symmetry.
func (c *FluentdClient) Post(ctx context.Context, tag string, message any) error {
	return c.client.Post(tag, message)
}

// --------------------
// Noop client (disabled mode)
// --------------------

type NoopClient struct{}

func (n *NoopClient) Post(ctx context.Context, tag string, message any) error {
	return nil
}

func (n *NoopClient) Close() error {
	return nil
}
