package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

var (
	errEmptyAddr     = errors.New("logstash: empty address")
	errRetryCooldown = errors.New("logstash: retry cooldown in effect")
)

// LogstashWriter forwards newline-delimited log lines to a Logstash TCP
// input. Writes never block the caller on an unreachable Logstash: lines
// are dropped until the next reconnect window opens.
type LogstashWriter struct {
	addr    string
	dialer  net.Dialer
	timeout time.Duration
	backoff time.Duration
	now     func() time.Time

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	dropped   int
	closed    bool
}

type Option func(*LogstashWriter)

// WithDialTimeout overrides the TCP dial timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.dialer.Timeout = d }
}

// WithWriteTimeout overrides the per-line write deadline. Defaults to 1 second.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.timeout = d }
}

// WithRetryInterval overrides the pause after a failed dial or write.
// Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) { w.backoff = d }
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errEmptyAddr
	}

	w := &LogstashWriter{
		addr:    addr,
		dialer:  net.Dialer{Timeout: 2 * time.Second},
		timeout: time.Second,
		backoff: 5 * time.Second,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Write implements io.Writer. It reports the full length as written even
// when the line is dropped so zerolog never surfaces a logging failure.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if err := w.connectLocked(); err != nil {
		w.dropped++
		return len(p), nil
	}

	if w.timeout > 0 {
		_ = w.conn.SetWriteDeadline(w.now().Add(w.timeout))
	}
	if _, err := w.conn.Write(line); err != nil {
		w.dropped++
		w.resetLocked()
	}
	return len(p), nil
}

// Dropped returns how many lines were discarded because Logstash was
// unreachable.
func (w *LogstashWriter) Dropped() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) connectLocked() error {
	if w.conn != nil {
		return nil
	}
	if !w.nextRetry.IsZero() && w.now().Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := w.dialer.Dial("tcp", w.addr)
	if err != nil {
		w.nextRetry = w.now().Add(w.backoff)
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *LogstashWriter) resetLocked() {
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.nextRetry = w.now().Add(w.backoff)
}
