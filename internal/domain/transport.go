package domain

import (
	"context"
	"errors"
	"net"
	"net/url"
	"strconv"
	"syscall"
)

// TransportErrorKind is a high-level classification of transport failures.
type TransportErrorKind string

const (
	TransportUnknown TransportErrorKind = "unknown"
	TransportTimeout TransportErrorKind = "timeout"
	TransportDNS     TransportErrorKind = "dns"
	TransportConn    TransportErrorKind = "connection"
	TransportHTTP    TransportErrorKind = "http"
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return "unexpected http status " + strconv.Itoa(e.Status)
}

// Retryable reports whether a repeat of the same request may succeed.
func (e *StatusError) Retryable() bool {
	return e.Status == 429 || e.Status >= 500
}

// ClassifyTransportError maps net/url/context errors to a TransportErrorKind.
func ClassifyTransportError(err error) TransportErrorKind {
	if err == nil {
		return TransportUnknown
	}

	var se *StatusError
	if errors.As(err, &se) {
		return TransportHTTP
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return TransportTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return TransportDNS
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return TransportTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ETIMEDOUT) ||
		errors.Is(err, syscall.EPIPE) {
		return TransportConn
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return TransportConn
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return TransportTimeout
	}

	return TransportUnknown
}
