package telemetry

import (
	"strings"

	"stundenmanager/config"
	"stundenmanager/internal/core"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric struct；停用時所有欄位為 nil，呼叫端需先判斷
type Metric struct {
	HttpRequestsTotal        *prometheus.CounterVec
	HttpRequestDuration      *prometheus.HistogramVec
	RecordsCreatedTotal      *prometheus.CounterVec
	RecordConflictsTotal     *prometheus.CounterVec
	ValidationFailuresTotal  *prometheus.CounterVec
	CollaboratorFailureTotal *prometheus.CounterVec
	OrphanIdentitiesDeleted  prometheus.Counter
}

// NewMetric 建立所有指標並註冊到 prometheus.DefaultRegisterer
func NewMetric(config *config.Configuration) *Metric {
	return NewMetricWithRegisterer(config, prometheus.DefaultRegisterer)
}

// NewMetricWithRegisterer 測試時可傳入獨立的 registry，避免重複註冊
func NewMetricWithRegisterer(config *config.Configuration, registerer prometheus.Registerer) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	prefix := metricPrefix(config.App.Name)

	m := &Metric{
		HttpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + string(core.MetricHttpRequestDuration),
				Help:    "Request duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		RecordsCreatedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRecordsCreatedTotal),
				Help: "Records written by the create endpoints",
			},
			labelNames(core.MetricLabelRecord),
		),
		RecordConflictsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricRecordConflictsTotal),
				Help: "Create calls rejected because an equal or overlapping record exists",
			},
			labelNames(core.MetricLabelRecord),
		),
		ValidationFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricValidationFailuresTotal),
				Help: "Field violations found while validating create payloads",
			},
			labelNames(core.MetricLabelRecord, core.MetricLabelField),
		),
		CollaboratorFailureTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricCollaboratorFailureTotal),
				Help: "Unexpected identity or store failures reported as internal",
			},
			labelNames(core.MetricLabelRecord),
		),
		OrphanIdentitiesDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + string(core.MetricOrphanIdentitiesDeleted),
				Help: "Identities removed because no user document was written for them",
			},
		),
	}
	registerer.MustRegister(
		m.HttpRequestsTotal,
		m.HttpRequestDuration,
		m.RecordsCreatedTotal,
		m.RecordConflictsTotal,
		m.ValidationFailuresTotal,
		m.CollaboratorFailureTotal,
		m.OrphanIdentitiesDeleted,
	)
	return m
}

func (m *Metric) IncCreated(record core.RecordKind) {
	if m == nil || m.RecordsCreatedTotal == nil {
		return
	}
	m.RecordsCreatedTotal.WithLabelValues(string(record)).Inc()
}

func (m *Metric) IncConflict(record core.RecordKind) {
	if m == nil || m.RecordConflictsTotal == nil {
		return
	}
	m.RecordConflictsTotal.WithLabelValues(string(record)).Inc()
}

func (m *Metric) IncValidationFailure(record core.RecordKind, field string) {
	if m == nil || m.ValidationFailuresTotal == nil {
		return
	}
	m.ValidationFailuresTotal.WithLabelValues(string(record), field).Inc()
}

func (m *Metric) IncCollaboratorFailure(record core.RecordKind) {
	if m == nil || m.CollaboratorFailureTotal == nil {
		return
	}
	m.CollaboratorFailureTotal.WithLabelValues(string(record)).Inc()
}

func (m *Metric) AddOrphansDeleted(n int) {
	if m == nil || m.OrphanIdentitiesDeleted == nil {
		return
	}
	m.OrphanIdentitiesDeleted.Add(float64(n))
}

// metricPrefix 服務名稱轉成合法的 metric 前綴（只保留英數與底線）
func metricPrefix(name string) string {
	if name == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name) + "_"
}

// labelNames helper: LabelName slice 轉成 []string
func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
