package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sensutv/internal/platform/net/middleware"
)

func runAccessLog(t *testing.T, opt middleware.AccessLogOptions, next http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	middleware.AccessLog(opt)(next).ServeHTTP(rr, req)
	return rr
}

func TestAccessLog_PassesStatusAndBodyThrough(t *testing.T) {
	rr := runAccessLog(t, middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
	})
	if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
		t.Fatalf("code=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestAccessLog_SlowMarkingDoesNotAlterResponse(t *testing.T) {
	rr := runAccessLog(t, middleware.AccessLogOptions{Slow: time.Nanosecond}, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = io.WriteString(w, "slow")
	})
	if rr.Code != http.StatusOK || rr.Body.String() != "slow" {
		t.Fatalf("code=%d body=%q", rr.Code, rr.Body.String())
	}
}

func TestAccessLog_MultipleWritesAccumulate(t *testing.T) {
	rr := runAccessLog(t, middleware.AccessLogOptions{}, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hi"))
		_, _ = w.Write([]byte("there"))
	})
	if rr.Body.String() != "hithere" {
		t.Fatalf("body=%q", rr.Body.String())
	}
}
