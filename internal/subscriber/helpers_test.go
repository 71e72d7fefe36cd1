package subscriber

import (
	"context"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/queue/ring"
	"net"
	"sync/atomic"
	"testing"
	"time"
)

func testCtx(t *testing.T) context.Context {
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	return logctx.New(context.Background(), global.NSTest, global.VerbosityNone, done)
}

func testHistory(t *testing.T, values ...int32) *ring.Buffer[int32] {
	history, err := ring.New[int32]([]string{global.NSTest}, global.DefaultHistoryCapacity)
	if err != nil {
		t.Fatalf("expected no error creating history, but got '%v'", err)
	}
	for _, value := range values {
		history.Push(value)
	}
	return history
}

// Scripted packet source
type fakeReader struct {
	reads atomic.Int64
	next  func(p []byte) (int, error)
}

func (reader *fakeReader) ReadFrom(p []byte) (n int, addr net.Addr, err error) {
	reader.reads.Add(1)
	n, err = reader.next(p)
	addr = &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 9}
	return
}

// Polls cond until true or timeout
func waitFor(t *testing.T, timeout time.Duration, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
