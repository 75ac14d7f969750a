package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeProbe struct {
	err   error
	calls int
}

func (p *fakeProbe) Ping(context.Context) error {
	p.calls++
	return p.err
}

func TestHealthServiceReadiness(t *testing.T) {
	probe := &fakeProbe{}
	health := NewHealthService(zap.NewNop(), probe)

	assert.True(t, health.IsLive())
	assert.False(t, health.IsReady(context.Background()))
	assert.Equal(t, 0, probe.calls, "no ping before startup finished")

	health.SetReady(true)
	assert.True(t, health.IsReady(context.Background()))
	assert.Equal(t, 1, probe.calls)

	probe.err = errors.New("server selection timeout")
	assert.False(t, health.IsReady(context.Background()))

	probe.err = nil
	assert.True(t, health.IsReady(context.Background()))

	health.SetReady(false)
	assert.False(t, health.IsReady(context.Background()))
}

func TestHealthServiceWithoutStore(t *testing.T) {
	health := NewHealthService(zap.NewNop(), nil)
	health.SetReady(true)
	assert.True(t, health.IsReady(context.Background()))
}
