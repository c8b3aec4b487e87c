package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/scwatts/ecocyc-pathways/internal/domain"
)

const defaultMaxBodyBytes = 32 << 20 // 32MB

// ErrBodyTooLarge is returned when a response exceeds the body limit. It is not retried.
var ErrBodyTooLarge = errors.New("response body too large")

// ResponseData captures the response details and duration.
type ResponseData struct {
	Status    int
	Headers   http.Header
	BodyBytes []byte
	Duration  time.Duration
	Attempts  int
}

// Executor executes HTTP requests with timing and bounded retries.
type Executor struct {
	client       *http.Client
	timeout      time.Duration
	retries      int
	backoff      time.Duration
	maxBackoff   time.Duration
	maxBodyBytes int64
	userAgent    string
	logger       *slog.Logger
}

// ExecutorOption allows configuring an Executor.
type ExecutorOption func(*Executor)

// WithTimeout sets the timeout applied to each attempt.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) { e.timeout = timeout }
}

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = client }
}

// WithRetries sets how many extra attempts follow a retryable failure.
func WithRetries(n int) ExecutorOption {
	return func(e *Executor) { e.retries = n }
}

// WithBackoff sets the initial and maximum wait between attempts.
func WithBackoff(initial, maxWait time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.backoff = initial
		e.maxBackoff = maxWait
	}
}

func WithMaxBodyBytes(n int64) ExecutorOption {
	return func(e *Executor) { e.maxBodyBytes = n }
}

func WithUserAgent(ua string) ExecutorOption {
	return func(e *Executor) { e.userAgent = ua }
}

func WithLogger(l *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// NewExecutor builds an Executor with a default client and timeout.
func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := DefaultConfig()
	e := &Executor{
		client:       New(cfg),
		timeout:      cfg.Timeout,
		retries:      0,
		backoff:      500 * time.Millisecond,
		maxBackoff:   10 * time.Second,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes a single attempt and returns response data plus duration.
// Non-2xx statuses are not errors here; Get decides what to do with them.
func (e *Executor) Do(ctx context.Context, req *http.Request) (ResponseData, error) {
	start := time.Now()
	ctxWithTimeout := ctx
	cancel := func() {}
	if e.timeout > 0 {
		ctxWithTimeout, cancel = context.WithTimeout(ctx, e.timeout)
	}
	defer cancel()

	resp, err := e.client.Do(req.WithContext(ctxWithTimeout))
	duration := time.Since(start)
	if err != nil {
		return ResponseData{Duration: duration}, err
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, e.maxBodyBytes)
	if err != nil {
		return ResponseData{Duration: time.Since(start)}, err
	}
	if truncated {
		return ResponseData{Status: resp.StatusCode, Duration: time.Since(start)},
			fmt.Errorf("%w: exceeds %d bytes", ErrBodyTooLarge, e.maxBodyBytes)
	}

	return ResponseData{
		Status:    resp.StatusCode,
		Headers:   resp.Header.Clone(),
		BodyBytes: body,
		Duration:  time.Since(start),
	}, nil
}

// Get fetches url, retrying network failures and 5xx/429 responses with
// exponential backoff. Other 4xx responses fail immediately.
func (e *Executor) Get(ctx context.Context, url string) (ResponseData, error) {
	var out ResponseData
	attempts := 0

	op := func() error {
		attempts++
		req, err := BuildRequest(ctx, url, e.userAgent)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := e.Do(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			if errors.Is(err, ErrBodyTooLarge) {
				return backoff.Permanent(err)
			}
			return err
		}

		if resp.Status < 200 || resp.Status > 299 {
			se := &domain.StatusError{Status: resp.Status}
			if se.Retryable() {
				return se
			}
			return backoff.Permanent(se)
		}

		out = resp
		return nil
	}

	notify := func(err error, wait time.Duration) {
		e.logger.Warn("http.retry",
			"url", url,
			"attempt", attempts,
			"wait", wait.String(),
			"kind", string(domain.ClassifyTransportError(err)),
			"err", err.Error(),
		)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(e.policy(), ctx), notify)
	out.Attempts = attempts
	if err == nil {
		e.logger.Debug("http.get", "url", url, "status", out.Status, "attempts", attempts, "ms", out.Duration.Milliseconds())
		return out, nil
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		return out, err
	}
	return out, &domain.OpError{
		Op:     "httpclient.get",
		Kind:   domain.KindTransport,
		Target: url,
		Err:    fmt.Errorf("%s after %d attempt(s): %w", domain.ClassifyTransportError(err), attempts, err),
	}
}

func (e *Executor) policy() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = e.backoff
	if e.maxBackoff > 0 {
		b.MaxInterval = e.maxBackoff
	}
	// The retry count bounds the loop, not wall time.
	b.MaxElapsedTime = 0

	retries := e.retries
	if retries < 0 {
		retries = 0
	}
	return backoff.WithMaxRetries(b, uint64(retries))
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}
