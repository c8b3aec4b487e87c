package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestExecutorGet_RetriesTransientStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("<ptools-xml/>"))
	}))
	defer server.Close()

	exec := NewExecutor(WithRetries(2), WithBackoff(time.Millisecond, 5*time.Millisecond))

	resp, err := exec.Get(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", resp.Attempts)
	}
	if string(resp.BodyBytes) != "<ptools-xml/>" {
		t.Fatalf("unexpected body %q", resp.BodyBytes)
	}
}

func TestExecutorGet_GivesUpAfterRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	exec := NewExecutor(WithRetries(2), WithBackoff(time.Millisecond, time.Millisecond))

	_, err := exec.Get(context.Background(), server.URL)
	if !domain.IsKind(err, domain.KindTransport) {
		t.Fatalf("expected KindTransport, got %v", err)
	}
	var se *domain.StatusError
	if !errors.As(err, &se) || se.Status != http.StatusBadGateway {
		t.Fatalf("expected StatusError 502 in chain, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Fatalf("expected 3 calls (1 + 2 retries), got %d", got)
	}
}

func TestExecutorGet_DoesNotRetryNotFound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	exec := NewExecutor(WithRetries(3), WithBackoff(time.Millisecond, time.Millisecond))

	_, err := exec.Get(context.Background(), server.URL)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single call, got %d", got)
	}
	if domain.ClassifyTransportError(err) != domain.TransportHTTP {
		t.Fatalf("expected http classification, got %s", domain.ClassifyTransportError(err))
	}
}

func TestExecutorGet_RejectsOversizedBody(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write(make([]byte, 64))
	}))
	defer server.Close()

	exec := NewExecutor(WithMaxBodyBytes(16), WithRetries(3), WithBackoff(time.Millisecond, time.Millisecond))

	_, err := exec.Get(context.Background(), server.URL)
	if !domain.IsKind(err, domain.KindTransport) {
		t.Fatalf("expected KindTransport, got %v", err)
	}
	if !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected oversized body not to be retried, got %d calls", got)
	}
}

func TestExecutorGet_StopsOnCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := NewExecutor(WithRetries(3), WithBackoff(time.Millisecond, time.Millisecond))
	resp, err := exec.Get(ctx, server.URL)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if resp.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", resp.Attempts)
	}
}
