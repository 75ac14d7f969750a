package core

const ContextTraceKey = "telemetry_trace_ctx"

// ==== 型別安全 span name ====
type TraceSpanName string

const (
	SpanLoggerMiddleware   TraceSpanName = "logger_middleware"
	SpanRecoveryMiddleware TraceSpanName = "recovery_middleware"
	SpanCorsMiddleware     TraceSpanName = "cors_middleware"
	SpanResponseMiddleware TraceSpanName = "response_middleware"
	SpanRecordPipeline     TraceSpanName = "record_pipeline"
	SpanIdentityReconcile  TraceSpanName = "identity_reconcile"
)

// 指標名稱常數
type MetricName string

const (
	MetricHttpRequestsTotal        MetricName = "requests_total"
	MetricHttpRequestDuration      MetricName = "request_duration_seconds"
	MetricRecordsCreatedTotal      MetricName = "records_created_total"
	MetricRecordConflictsTotal     MetricName = "record_conflicts_total"
	MetricValidationFailuresTotal  MetricName = "validation_failures_total"
	MetricCollaboratorFailureTotal MetricName = "collaborator_failures_total"
	MetricOrphanIdentitiesDeleted  MetricName = "orphan_identities_deleted_total"
)

// label name 常數
type MetricLabelName string

const (
	MetricLabelEndpoint MetricLabelName = "endpoint"
	MetricLabelStatus   MetricLabelName = "status"
	MetricLabelRecord   MetricLabelName = "record"
	MetricLabelField    MetricLabelName = "field"
)

type LoggerRequestMeta struct {
	Method     string            `trace:"request.method"`
	Path       string            `trace:"request.path"`
	FullPath   string            `trace:"request.full_path"`
	Query      string            `trace:"request.query"`
	Scheme     string            `trace:"http.scheme"`
	Host       string            `trace:"http.host"`
	UserAgent  string            `trace:"http.user_agent"`
	ContentLen int64             `trace:"http.request_content_length"`
	Proto      string            `trace:"http.flavor"`
	ClientIP   string            `trace:"net.peer.ip"`
	Headers    map[string]string `trace:"http.request.header"`
}

// 記錄建立流程（validate -> guard -> conflict -> write）
type TraceRecordPipelineMeta struct {
	Record     string   `trace:"record.kind"`
	UID        string   `trace:"record.uid,omitempty"`
	Stage      string   `trace:"record.stage"`
	Violations []string `trace:"record.violations,omitempty"`
	Conflict   bool     `trace:"record.conflict"`
	DocumentID string   `trace:"record.document_id,omitempty"`
}

// 供 Redis scope 鎖使用
type TraceScopeLockMeta struct {
	Scope    string `trace:"lock.scope"`
	TTLMs    int64  `trace:"lock.ttl_ms"`
	Acquired bool   `trace:"lock.acquired"`
	Op       string `trace:"lock.op"` // "acquire" / "release"
}

type TraceReconcileMeta struct {
	GraceMinutes int `trace:"reconcile.grace_minutes"`
	Scanned      int `trace:"reconcile.scanned"`
	Deleted      int `trace:"reconcile.deleted"`
}

type TracePanicMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	ClientIP   string  `trace:"net.peer.ip"`
	UserAgent  string  `trace:"http.user_agent"`
	DurationMs float64 `trace:"response.latency_ms"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"error.message"`
	Stack      string  `trace:"error.stack"`
}

type TraceErrorMeta struct {
	Code       int     `trace:"error.code"`
	Message    string  `trace:"error.message"`
	Detail     string  `trace:"error.detail"`
	Status     int     `trace:"http.status_code"`
	DurationMs float64 `trace:"response.latency_ms"`
}

type TraceResponseMeta struct {
	Path       string  `trace:"http.path"`
	Method     string  `trace:"http.method"`
	Status     int     `trace:"http.status_code"`
	Message    string  `trace:"response.message"`
	Code       int     `trace:"response.code"`
	DurationMs float64 `trace:"response.latency_ms"`
	Data       string  `trace:"response.data_preview"`
}

type TraceHttpServerMeta struct {
	ClientAddr        string `trace:"client.address"`
	HttpRequestMethod string `trace:"http.request.method"`
	HttpRoute         string `trace:"http.route"`
	UrlPath           string `trace:"http.request.path"`
	UrlScheme         string `trace:"http.request.url.scheme"`
	UserAgent         string `trace:"user_agent.original"`
	ServerAddress     string `trace:"server.address"`
	NetworkPeerAddr   string `trace:"network.peer.address"`
	NetworkPeerPort   int    `trace:"network.peer.port"`
	NetworkProtoVer   string `trace:"network.protocol.version"`
	SpanTraceID       string `trace:"span.trace_id"`
	HttpStatusCode    int    `trace:"http.response.status_code"`
}
