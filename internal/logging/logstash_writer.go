package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	errEmptyAddress = errors.New("logstash: empty address")
	errCoolingDown  = errors.New("logstash: waiting before reconnect")
	defaultLogstash = LogstashConfig{DialTimeout: 2 * time.Second, WriteTimeout: time.Second, RetryInterval: 5 * time.Second}
)

// LogstashConfig tunes the TCP connection. Zero fields take the defaults
// (2s dial, 1s write, 5s between reconnect attempts).
type LogstashConfig struct {
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	RetryInterval time.Duration
}

// LogstashWriter forwards newline-delimited log entries to a Logstash TCP
// input. Entries are dropped, never queued, while the input is unreachable.
type LogstashWriter struct {
	addr string
	cfg  LogstashConfig

	mu      sync.Mutex
	conn    net.Conn
	retryAt time.Time
	closed  bool
	dropped atomic.Uint64
	dial    func(network, address string, timeout time.Duration) (net.Conn, error)
}

func NewLogstashWriter(addr string, cfg LogstashConfig) (*LogstashWriter, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errEmptyAddress
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultLogstash.DialTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultLogstash.WriteTimeout
	}
	if cfg.RetryInterval < 0 {
		cfg.RetryInterval = 0
	} else if cfg.RetryInterval == 0 {
		cfg.RetryInterval = defaultLogstash.RetryInterval
	}
	return &LogstashWriter{addr: addr, cfg: cfg, dial: net.DialTimeout}, nil
}

// Write always reports the full length as written unless the writer is
// closed; delivery failures only bump the dropped counter.
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
		w.dropped.Add(1)
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(w.cfg.WriteTimeout))
	if _, err := w.conn.Write(line); err != nil {
		w.dropped.Add(1)
		w.resetLocked()
	}
	return len(p), nil
}

// Dropped returns how many entries never reached Logstash.
func (w *LogstashWriter) Dropped() uint64 {
	return w.dropped.Load()
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
	if !w.retryAt.IsZero() && time.Now().Before(w.retryAt) {
		return errCoolingDown
	}
	conn, err := w.dial("tcp", w.addr, w.cfg.DialTimeout)
	if err != nil {
		w.retryAt = time.Now().Add(w.cfg.RetryInterval)
		return err
	}
	w.conn = conn
	w.retryAt = time.Time{}
	return nil
}

func (w *LogstashWriter) resetLocked() {
	if w.conn != nil {
		_ = w.conn.Close()
		w.conn = nil
	}
	w.retryAt = time.Now().Add(w.cfg.RetryInterval)
}
