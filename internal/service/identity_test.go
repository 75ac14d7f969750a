package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/database/mongodb/model"
	"stundenmanager/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReconcileOrphans(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	identities := &mockIdentityProvider{}
	identities.On("ListOrphans", mock.Anything, now.Add(-30*time.Minute), int64(reconcileBatchSize)).
		Return([]*model.Identity{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	identities.On("DeleteIdentity", mock.Anything, "a").Return(nil)
	identities.On("DeleteIdentity", mock.Anything, "b").Return(errors.New("timeout"))
	identities.On("DeleteIdentity", mock.Anything, "c").Return(nil)

	conf := &config.Configuration{Identity: config.Identity{OrphanGraceMinutes: 30}}
	svc := NewIdentityService(zap.NewNop(), telemetry.NewNoopTrace(), &telemetry.Metric{}, conf, identities)
	svc.now = func() time.Time { return now }

	deleted, err := svc.ReconcileOrphans(context.Background())

	assert.Equal(t, 2, deleted)
	assert.Error(t, err)
	identities.AssertNumberOfCalls(t, "DeleteIdentity", 3)
}

func TestReconcileOrphansDefaultGrace(t *testing.T) {
	identities := &mockIdentityProvider{}
	identities.On("ListOrphans", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	svc := NewIdentityService(zap.NewNop(), telemetry.NewNoopTrace(), &telemetry.Metric{}, &config.Configuration{}, identities)
	assert.Equal(t, defaultOrphanGrace, svc.grace)

	deleted, err := svc.ReconcileOrphans(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
	identities.AssertNotCalled(t, "DeleteIdentity", mock.Anything, mock.Anything)
}

func TestReconcileOrphansListFailure(t *testing.T) {
	identities := &mockIdentityProvider{}
	identities.On("ListOrphans", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("aggregate failed"))

	svc := NewIdentityService(zap.NewNop(), telemetry.NewNoopTrace(), &telemetry.Metric{}, &config.Configuration{}, identities)
	_, err := svc.ReconcileOrphans(context.Background())
	assert.EqualError(t, err, "aggregate failed")
}
