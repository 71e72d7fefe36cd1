package subscriber

import (
	"context"
	"errors"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/queue/ring"
	"mcaststats/pkg/protocol"
	"net"
	"runtime/debug"
	"time"
)

func NewReceiver(namespace []string, conn PacketReader, history *ring.Buffer[int32], counters *Counters, receiving *ReceiveSwitch, suspendPoll time.Duration) (new *Receiver) {
	new = &Receiver{
		Namespace:   append(append([]string(nil), namespace...), global.NSRecv),
		conn:        conn,
		history:     history,
		counters:    counters,
		receiving:   receiving,
		suspendPoll: suspendPoll,
	}
	return
}

// Reads datagrams into history while the switch is on.
// Returns when ctx is done, the socket is closed, or after a recovered panic.
func (receiver *Receiver) Run(ctx context.Context) {
	defer func() {
		if fatalError := recover(); fatalError != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Error in receive loop: %v\n%s", fatalError, debug.Stack())
		}
	}()

	buffer := make([]byte, global.DefaultMaxDatagramSize)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !receiver.receiving.Receiving() {
			if !sleepCtx(ctx, receiver.suspendPoll) {
				return
			}
			continue
		}

		n, source, err := receiver.conn.ReadFrom(buffer)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			receiver.counters.Lost.Add(1)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog,
				"Socket error: %v\n", err)
			continue
		}

		logctx.LogEvent(ctx, global.VerbosityFullData, global.InfoLog,
			"Received packet size: %d bytes from %v\n", n, source)

		value, err := protocol.DecodeSample(buffer[:n])
		if err != nil {
			receiver.counters.Lost.Add(1)
			logctx.LogEvent(ctx, global.VerbosityProgress, global.WarnLog,
				"Dropped datagram from %v: %v\n", source, err)
			continue
		}

		receiver.history.Push(value)
		receiver.counters.Received.Add(1)

		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"Received data: %d\n", value)
	}
}

// Waits for duration or ctx, false when ctx ended first
func sleepCtx(ctx context.Context, duration time.Duration) (ok bool) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
		ok = true
	}
	return
}
