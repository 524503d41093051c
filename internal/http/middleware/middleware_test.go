package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	logctx "github.com/pribylovaa/go-classifieds/internal/pkg/log"
)

// capHandler — тестовый slog.Handler, который:
//   - аккумулирует базовые attrs, приходящие через Logger.With(...);
//   - собирает attrs из каждой записи в map[string]any;
//   - не создаёт реальных I/O.
type capHandler struct {
	mu      sync.Mutex
	base    []slog.Attr
	lastMsg string
	lastLvl slog.Level
	attrs   map[string]any
	count   int
}

func (h *capHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make(map[string]any, len(h.base)+8)
	for _, a := range h.base {
		out[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.Any()
		return true
	})
	h.count++
	h.lastMsg = r.Message
	h.lastLvl = r.Level
	h.attrs = out
	return nil
}

func (h *capHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) > 0 {
		h.base = append(h.base, attrs...)
	}
	return h
}

func (h *capHandler) WithGroup(string) slog.Handler { return h }

func makeReq(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = (&net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 12345}).String()
	return req
}

type errBody struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func TestChain_Order(t *testing.T) {
	order := []string{}
	m1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m1-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m1-end")
		})
	}
	m2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "m2-begin")
			next.ServeHTTP(w, r)
			order = append(order, "m2-end")
		})
	}
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	Chain(final, m1, m2).ServeHTTP(rr, makeReq("/chain"))

	require.Equal(t, []string{"m1-begin", "m2-begin", "handler", "m2-end", "m1-end"}, order)
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestID_GenerateAndPropagate(t *testing.T) {
	var seenID string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(HeaderRequestID)
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Chain(h, RequestID()).ServeHTTP(rr, makeReq("/rid"))

	respID := rr.Header().Get(HeaderRequestID)
	require.NotEmpty(t, respID)
	require.Len(t, respID, 36) // UUID в канонической форме
	require.Equal(t, respID, seenID)
}

func TestRequestID_UseExisting_RejectOversized(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	chain := Chain(h, RequestID())

	rr := httptest.NewRecorder()
	req := makeReq("/rid2")
	req.Header.Set(HeaderRequestID, "abc123-existing-id")
	chain.ServeHTTP(rr, req)
	require.Equal(t, "abc123-existing-id", rr.Header().Get(HeaderRequestID))

	rr = httptest.NewRecorder()
	req = makeReq("/rid3")
	req.Header.Set(HeaderRequestID, strings.Repeat("x", 500))
	chain.ServeHTTP(rr, req)
	require.Len(t, rr.Header().Get(HeaderRequestID), 36)
}

func TestLogging_RequestScopedLoggerAndRecord(t *testing.T) {
	ch := &capHandler{}
	l := slog.New(ch)

	var inHandler *slog.Logger
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inHandler = logctx.From(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})

	rr := httptest.NewRecorder()
	req := makeReq("/log?limit=2")
	req.Header.Set(HeaderRequestID, "rid-1")
	Chain(h, Logging(l)).ServeHTTP(rr, req)

	require.NotNil(t, inHandler)
	require.Equal(t, 1, ch.count)
	require.Equal(t, "http", ch.lastMsg)
	require.Equal(t, slog.LevelInfo, ch.lastLvl)
	require.Equal(t, "rid-1", ch.attrs["request_id"])
	require.Equal(t, "/log", ch.attrs["path"])
	require.Equal(t, "limit=2", ch.attrs["query"])
	require.EqualValues(t, http.StatusCreated, ch.attrs["status"])
	require.EqualValues(t, 5, ch.attrs["bytes"])
}

func TestLogging_ServerErrorIsWarn(t *testing.T) {
	ch := &capHandler{}
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	Chain(h, Logging(slog.New(ch))).ServeHTTP(httptest.NewRecorder(), makeReq("/x"))
	require.Equal(t, slog.LevelWarn, ch.lastLvl)
}

func TestRecover_Returns500JSON(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom: secret detail")
	})

	rr := httptest.NewRecorder()
	req := makeReq("/panic")
	req.Header.Set(HeaderRequestID, "rid-p")
	Chain(h, Recover()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "internal", body.Error)
	require.Equal(t, "rid-p", body.RequestID)
	require.NotContains(t, rr.Body.String(), "secret")
}

func TestTimeout_EarliestDeadlineWins(t *testing.T) {
	var has bool
	var dl time.Time
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dl, has = r.Context().Deadline()
	})

	Chain(h, Timeout(50*time.Millisecond)).ServeHTTP(httptest.NewRecorder(), makeReq("/t"))
	require.True(t, has)
	require.WithinDuration(t, time.Now().Add(50*time.Millisecond), dl, 50*time.Millisecond)

	// Поздний дедлайн клиента сокращается до d.
	late, cancelLate := context.WithTimeout(context.Background(), time.Hour)
	defer cancelLate()

	Chain(h, Timeout(50*time.Millisecond)).ServeHTTP(httptest.NewRecorder(), makeReq("/t").WithContext(late))
	require.WithinDuration(t, time.Now().Add(50*time.Millisecond), dl, 50*time.Millisecond)

	// Ранний дедлайн клиента сохраняется.
	early, cancelEarly := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancelEarly()
	want, _ := early.Deadline()

	Chain(h, Timeout(time.Hour)).ServeHTTP(httptest.NewRecorder(), makeReq("/t").WithContext(early))
	require.Equal(t, want, dl)

	has = true
	Chain(h, Timeout(0)).ServeHTTP(httptest.NewRecorder(), makeReq("/t"))
	require.False(t, has)
}

type fakeAvailability struct{ up bool }

func (f fakeAvailability) Up() bool { return f.up }

func TestStoreGuard(t *testing.T) {
	called := false
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	Chain(h, StoreGuard(fakeAvailability{up: false})).ServeHTTP(rr, makeReq("/api/products"))
	require.False(t, called)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var body errBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "unavailable", body.Error)

	rr = httptest.NewRecorder()
	Chain(h, StoreGuard(fakeAvailability{up: true})).ServeHTTP(rr, makeReq("/api/products"))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rr.Code)
}

type obsCall struct {
	route, method string
	code          int
}

type fakeObserver struct{ calls []obsCall }

func (f *fakeObserver) ObserveRequest(route, method string, code int, _ time.Duration) {
	f.calls = append(f.calls, obsCall{route, method, code})
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	obs := &fakeObserver{}

	r := chi.NewRouter()
	r.Use(Metrics(obs))
	r.Get("/sports/{sportId}/sub-areas", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	r.ServeHTTP(httptest.NewRecorder(), makeReq("/sports/42/sub-areas"))
	r.ServeHTTP(httptest.NewRecorder(), makeReq("/nope"))

	require.Len(t, obs.calls, 2)
	require.Equal(t, obsCall{"/sports/{sportId}/sub-areas", http.MethodGet, http.StatusAccepted}, obs.calls[0])
	require.Equal(t, http.StatusNotFound, obs.calls[1].code)
}
