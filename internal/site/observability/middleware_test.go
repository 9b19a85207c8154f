package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hugodevelopr/hugodeveloper/internal/site/requestctx"
)

func TestRequestLoggerRecordsCompletion(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	handler := InjectLoggerMiddleware(zap.New(core))(
		RequestLoggerMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/blog?x=1", nil)
	req.Header.Set("User-Agent", "test-agent\n")
	ctx := requestctx.WithEnvironment(req.Context(), "staging")
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, zapcore.WarnLevel, entry.Level)

	fields := entry.ContextMap()
	require.Equal(t, "GET", fields["method"])
	require.Equal(t, "/blog", fields["path"])
	require.Equal(t, "staging", fields["environment"])
	require.Equal(t, "test-agent", fields["user_agent"])
	require.EqualValues(t, http.StatusTeapot, fields["status"])
	require.EqualValues(t, len("short and stout"), fields["bytes"])
}

func TestRecoveryMiddlewareAnswers500(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	handler := RecoveryMiddleware(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

func TestRecoveryMiddlewareRepanicsOnAbort(t *testing.T) {
	t.Parallel()

	handler := RecoveryMiddleware(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	require.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestSanitizeStripsControlCharacters(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", SanitizeRoute(""))
	require.Equal(t, "GET", SanitizeMethod("G\x00E\rT"))
	require.Len(t, SanitizeUserAgent(string(make([]byte, 300))), 0)

	long := make([]rune, 400)
	for i := range long {
		long[i] = 'a'
	}
	require.Len(t, SanitizeRoute(string(long)), 180)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("verbose")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
