package logging

import (
	"bufio"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestNewLogstashWriterRejectsEmptyAddress(t *testing.T) {
	if _, err := NewLogstashWriter("  ", LogstashConfig{}); err == nil {
		t.Fatalf("expected error for empty address")
	}
}

func TestLogstashWriterDeliversNewlineTerminatedEntries(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	received := make(chan string, 1)
	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		line, _ := bufio.NewReader(conn).ReadString('\n')
		received <- line
	}()

	w, err := NewLogstashWriter(listener.Addr().String(), LogstashConfig{})
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	defer w.Close()

	if n, err := w.Write([]byte(`{"level":"info"}`)); err != nil || n != 16 {
		t.Fatalf("expected full write, got n=%d err=%v", n, err)
	}

	select {
	case line := <-received:
		if line != "{\"level\":\"info\"}\n" {
			t.Fatalf("unexpected line %q", line)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for log line")
	}
}

func TestLogstashWriterDropsWhileUnreachable(t *testing.T) {
	w, err := NewLogstashWriter("127.0.0.1:1", LogstashConfig{RetryInterval: time.Hour})
	if err != nil {
		t.Fatalf("NewLogstashWriter returned error: %v", err)
	}
	dials := 0
	w.dial = func(network, address string, timeout time.Duration) (net.Conn, error) {
		dials++
		return nil, errors.New("connection refused")
	}

	for i := 0; i < 3; i++ {
		if n, err := w.Write([]byte("entry")); err != nil || n != 5 {
			t.Fatalf("expected silent drop, got n=%d err=%v", n, err)
		}
	}
	if dials != 1 {
		t.Fatalf("expected a single dial during the cooldown, got %d", dials)
	}
	if w.Dropped() != 3 {
		t.Fatalf("expected 3 dropped entries, got %d", w.Dropped())
	}

	_ = w.Close()
	if _, err := w.Write([]byte("late")); !errors.Is(err, io.ErrClosedPipe) {
		t.Fatalf("expected ErrClosedPipe after close, got %v", err)
	}
}
