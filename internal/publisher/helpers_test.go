package publisher

import (
	"net"
	"sync"
)

// Records datagrams instead of sending them
type fakeConn struct {
	mu       sync.Mutex
	payloads [][]byte
	dests    []*net.UDPAddr
	failWith error
	closed   bool
	written  chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{written: make(chan struct{}, 1024)}
}

func (conn *fakeConn) WriteToUDP(b []byte, addr *net.UDPAddr) (int, error) {
	conn.mu.Lock()
	defer conn.mu.Unlock()

	conn.payloads = append(conn.payloads, append([]byte(nil), b...))
	conn.dests = append(conn.dests, addr)
	select {
	case conn.written <- struct{}{}:
	default:
	}
	if conn.failWith != nil {
		return 0, conn.failWith
	}
	return len(b), nil
}

func (conn *fakeConn) Close() error {
	conn.mu.Lock()
	conn.closed = true
	conn.mu.Unlock()
	return nil
}

func (conn *fakeConn) sent() (payloads [][]byte) {
	conn.mu.Lock()
	defer conn.mu.Unlock()
	payloads = append(payloads, conn.payloads...)
	return
}
