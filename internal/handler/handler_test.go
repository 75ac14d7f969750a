package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"stundenmanager/config"
	"stundenmanager/internal/database/client"
	fluentdRepo "stundenmanager/internal/database/fluentd/repository"
	"stundenmanager/internal/database/mongodb/model"
	mongoRepo "stundenmanager/internal/database/mongodb/repository"
	"stundenmanager/internal/middleware"
	cErr "stundenmanager/internal/pkg/error"
	"stundenmanager/internal/service"
	"stundenmanager/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type envelope struct {
	RequestID   string          `json:"requestID"`
	Code        int             `json:"code"`
	Data        json.RawMessage `json:"data"`
	Message     string          `json:"message"`
	Description string          `json:"description"`
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string) (func(context.Context) error, error) {
	return func(context.Context) error { return nil }, nil
}

type memShifts struct {
	mu     sync.Mutex
	shifts []*model.Shift
}

func (s *memShifts) Exists(_ context.Context, start, end time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, shift := range s.shifts {
		if shift.StartDate.Equal(start) && shift.EndDate.Equal(end) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memShifts) Create(_ context.Context, shift *model.Shift) (*model.Shift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	shift.ID = primitive.NewObjectID()
	s.shifts = append(s.shifts, shift)
	return shift, nil
}

// memSessions 永遠找不到 session
type memSessions struct{}

func (memSessions) HasOverlap(context.Context, string, time.Time, time.Time) (bool, error) {
	return false, nil
}

func (memSessions) Create(_ context.Context, session *model.Session) (*model.Session, error) {
	session.ID = primitive.NewObjectID()
	return session, nil
}

func (memSessions) GetByID(context.Context, string, primitive.ObjectID) (*model.Session, error) {
	return nil, mongoRepo.ErrNotFound
}

func (memSessions) AppendBreak(context.Context, string, primitive.ObjectID, model.Break) error {
	return mongoRepo.ErrNotFound
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conf := &config.Configuration{App: config.App{Name: "stundenmanager-test", Version: "test"}}
	trace := telemetry.NewNoopTrace()
	logRepo := fluentdRepo.NewLogRepository(conf, &client.NoopClient{})
	pipeline := service.NewPipeline(zap.NewNop(), trace, &telemetry.Metric{}, noopLocker{}, logRepo)

	shiftHandler := NewShiftHandler(trace, service.NewShiftService(pipeline, &memShifts{}))
	sessionHandler := NewSessionHandler(trace, service.NewSessionService(pipeline, memSessions{}))
	health := service.NewHealthService(zap.NewNop(), nil)
	healthHandler := NewHealthHandler(health, conf)

	r := gin.New()
	r.Use(middleware.NewTraceEntry(trace, &telemetry.Metric{}, conf).Handler())
	r.Use(middleware.NewRecovery(zap.NewNop(), trace, conf, logRepo).ErrorHandler())
	r.Use(middleware.NewResponse(zap.NewNop(), trace, conf, logRepo).FormatHandler())
	r.POST("/rpc/createShift", shiftHandler.CreateShift)
	r.POST("/rpc/createBreak", sessionHandler.CreateBreak)
	r.POST("/rpc/boom", func(c *gin.Context) { panic("boom") })
	r.GET("/health/liveness", healthHandler.Liveness)
	r.GET("/health/readiness", healthHandler.Readiness)
	return r
}

func post(t *testing.T, r http.Handler, path string, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

const validShift = `{"startDate":1700000000000,"endDate":1700604800000,"morningShift":["a"],"lateShift":["b"],"nightShift":["c"]}`

func TestCreateShiftSuccessEnvelope(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createShift", validShift)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 0, env.Code)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, w.Header().Get("X-Request-ID"))

	var data struct {
		IsSuccess bool   `json:"isSuccess"`
		ShiftID   string `json:"shiftId"`
		StartDate int64  `json:"startDate"`
		EndDate   int64  `json:"endDate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.IsSuccess)
	assert.NotEmpty(t, data.ShiftID)
	assert.Equal(t, int64(1700000000000), data.StartDate)
	assert.Equal(t, int64(1700604800000), data.EndDate)
}

func TestCreateShiftDuplicateIsConflict(t *testing.T) {
	r := newTestEngine(t)

	w, _ := post(t, r, "/rpc/createShift", validShift)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := post(t, r, "/rpc/createShift", validShift)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, cErr.SHIFT_EXISTS, env.Code)
	assert.Equal(t, cErr.CodeShiftExists, env.Message)
}

func TestNullPayloadIsRejected(t *testing.T) {
	r := newTestEngine(t)

	for _, body := range []string{"", "null", "  "} {
		w, env := post(t, r, "/rpc/createShift", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, cErr.REQUEST_NULL, env.Code)
		assert.Equal(t, cErr.CodeRequestNull, env.Message)
	}
}

func TestInvalidArgumentCarriesViolations(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createShift", `{"startDate":1700000000000,"endDate":1600000000000,"morningShift":[],"lateShift":["b"],"nightShift":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.INVALID_ARGUMENT, env.Code)
	assert.Equal(t, cErr.CodeInvalidArgument, env.Message)
	assert.Contains(t, env.Description, "morningShift is empty.")
	assert.Contains(t, env.Description, "nightShift is empty.")

	var data struct {
		Violations []cErr.Violation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	fields := make([]string, 0, len(data.Violations))
	for _, v := range data.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"endDate", "morningShift", "nightShift"}, fields)
}

func violationFields(t *testing.T, env envelope) []string {
	t.Helper()
	var data struct {
		Violations []cErr.Violation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	fields := make([]string, 0, len(data.Violations))
	for _, v := range data.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func TestMistypedFieldIsReportedWithOtherViolations(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createShift", `{"startDate":"x","endDate":1,"morningShift":[],"lateShift":[],"nightShift":[]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.INVALID_ARGUMENT, env.Code)
	assert.Contains(t, env.Description, "startDate is not valid.")
	assert.Contains(t, env.Description, "morningShift is empty.")
	assert.ElementsMatch(t, []string{"startDate", "morningShift", "lateShift", "nightShift"}, violationFields(t, env))
}

func TestMalformedJSONIsInvalidArgument(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createShift", `{"startDate":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.INVALID_ARGUMENT, env.Code)
	assert.Contains(t, env.Description, "request body is not valid JSON")
}

func TestShiftListRejectsEmptyUID(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createShift", `{"startDate":1700000000000,"endDate":1700604800000,"morningShift":["a",""],"lateShift":["b"],"nightShift":["c"]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, cErr.INVALID_ARGUMENT, env.Code)
	assert.Equal(t, []string{"morningShift[1]"}, violationFields(t, env))
	assert.Contains(t, env.Description, "morningShift contains an empty uid.")
}

func TestCreateBreakUnknownSession(t *testing.T) {
	r := newTestEngine(t)
	id := primitive.NewObjectID().Hex()

	w, env := post(t, r, "/rpc/createBreak", `{"uid":"u1","documentId":"`+id+`","startTime":1700000000000,"endTime":1700000600000}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.SESSION_NOT_FOUND, env.Code)
	assert.Equal(t, cErr.CodeSessionNotFound, env.Message)
	assert.Contains(t, env.Description, id)
}

func TestPanicIsInternalError(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/boom", `{}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, cErr.INTERNAL_ERROR, env.Code)
	assert.Equal(t, cErr.CodeInternal, env.Message)
	assert.NotEmpty(t, env.RequestID)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	r := newTestEngine(t)

	w, env := post(t, r, "/rpc/createNothing", `{}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, cErr.NOT_FOUND, env.Code)
}

func TestHealthProbes(t *testing.T) {
	r := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/liveness", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/readiness", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
