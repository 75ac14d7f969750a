package repository

import (
	"context"
	"testing"

	"stundenmanager/config"
	"stundenmanager/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posted struct {
	tag     string
	message map[string]any
}

type recordingClient struct {
	records []posted
}

func (c *recordingClient) Post(_ context.Context, tag string, message any) error {
	c.records = append(c.records, posted{tag: tag, message: message.(map[string]any)})
	return nil
}

func (c *recordingClient) Close() error { return nil }

func TestLogRepositoryFillsDefaults(t *testing.T) {
	fake := &recordingClient{}
	conf := &config.Configuration{App: config.App{Version: "2.3.4"}}
	repository := NewLogRepository(conf, fake)

	require.NoError(t, repository.LogRequest(context.Background(), model.RequestLog{RequestID: "r1", Path: "/rpc/createShift", Method: "POST"}))
	require.NoError(t, repository.LogAudit(context.Background(), model.AuditLog{Record: "shift", Outcome: "created"}))

	require.Len(t, fake.records, 2)
	assert.Equal(t, "request_log", fake.records[0].tag)
	assert.Equal(t, "2.3.4", fake.records[0].message["version"])
	assert.NotEmpty(t, fake.records[0].message["logged_at"])

	assert.Equal(t, "record_audit_log", fake.records[1].tag)
	assert.Equal(t, "shift", fake.records[1].message["record"])
}

func TestLogRepositoryDefaultVersion(t *testing.T) {
	fake := &recordingClient{}
	repository := NewLogRepository(&config.Configuration{}, fake)

	require.NoError(t, repository.LogResponse(context.Background(), model.ResponseLog{RequestID: "r1", StatusCode: 201}))
	assert.Equal(t, "response_log", fake.records[0].tag)
	assert.Equal(t, "1.0.0", fake.records[0].message["version"])
	assert.EqualValues(t, 201, fake.records[0].message["status_code"])
}
