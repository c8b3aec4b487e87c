package domain

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"syscall"
	"testing"
)

func TestClassifyTransportError_Timeout_ContextDeadline(t *testing.T) {
	if got := ClassifyTransportError(context.DeadlineExceeded); got != TransportTimeout {
		t.Fatalf("expected timeout, got=%s", got)
	}
}

func TestClassifyTransportError_Timeout_NetError(t *testing.T) {
	err := &net.OpError{Op: "read", Net: "tcp", Err: syscall.ETIMEDOUT}
	if got := ClassifyTransportError(err); got != TransportConn && got != TransportTimeout {
		t.Fatalf("expected conn/timeout, got=%s", got)
	}
}

func TestClassifyTransportError_DNS(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "example.invalid"}
	if got := ClassifyTransportError(err); got != TransportDNS {
		t.Fatalf("expected dns, got=%s", got)
	}
}

func TestClassifyTransportError_ConnReset(t *testing.T) {
	err := &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}
	if got := ClassifyTransportError(err); got != TransportConn {
		t.Fatalf("expected conn, got=%s", got)
	}
}

func TestClassifyTransportError_URLWraps(t *testing.T) {
	inner := &net.DNSError{Err: "no such host", Name: "x.invalid"}
	err := &url.Error{Op: "Get", URL: "http://x.invalid", Err: inner}

	if got := ClassifyTransportError(err); got != TransportDNS {
		t.Fatalf("expected dns, got=%s", got)
	}
}

func TestClassifyTransportError_Status(t *testing.T) {
	err := fmt.Errorf("fetch: %w", &StatusError{Status: 503})
	if got := ClassifyTransportError(err); got != TransportHTTP {
		t.Fatalf("expected http, got=%s", got)
	}
}

func TestStatusErrorRetryable(t *testing.T) {
	cases := []struct {
		status int
		want   bool
	}{
		{500, true},
		{503, true},
		{429, true},
		{404, false},
		{400, false},
	}
	for _, c := range cases {
		if got := (&StatusError{Status: c.status}).Retryable(); got != c.want {
			t.Errorf("Retryable(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}
