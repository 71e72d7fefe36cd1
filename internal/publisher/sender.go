package publisher

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/pkg/protocol"
	"net"
	"runtime/debug"
	"time"
)

func NewSender(namespace []string, conn PacketWriter, destination *net.UDPAddr, rng *rand.Rand, cfg Config) (new *Sender) {
	new = &Sender{
		Namespace:   append(append([]string(nil), namespace...), global.NSSend),
		conn:        conn,
		destination: destination,
		rng:         rng,
		minValue:    cfg.MinValue,
		maxValue:    cfg.MaxValue,
		interval:    cfg.SendInterval,
	}
	return
}

// Draws a value uniformly from [min, max)
func NextValue(rng *rand.Rand, min, max int32) (value int32) {
	span := int64(max) - int64(min)
	value = int32(int64(min) + rng.Int64N(span))
	return
}

// Sends one sample per interval until ctx is done.
// The first send failure (or panic) ends the loop; there is no retry.
func (sender *Sender) Run(ctx context.Context) (err error) {
	defer func() {
		if fatalError := recover(); fatalError != nil {
			stack := debug.Stack()
			err = fmt.Errorf("panic in send loop: %v", fatalError)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Internal Server Error: %v\n%s", fatalError, stack)
		}
	}()

	payload := make([]byte, protocol.SampleLen)
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		value := NextValue(sender.rng, sender.minValue, sender.maxValue)
		err = protocol.PutSample(payload, value)
		if err != nil {
			return
		}

		var written int
		written, err = sender.conn.WriteToUDP(payload, sender.destination)
		if err != nil {
			if ctx.Err() != nil {
				// Socket closed by shutdown
				err = nil
				return
			}
			err = fmt.Errorf("failed to send sample to %v: %w", sender.destination, err)
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Internal Server Error: %v\n%s", err, debug.Stack())
			return
		}

		sender.Metrics.TotalPackets.Add(1)
		sender.Metrics.SumBytes.Add(uint64(written))
		sender.Metrics.LastValue.Store(int64(value))

		logctx.LogEvent(ctx, global.VerbosityData, global.InfoLog,
			"Sent value %d (%d bytes) to %v\n", value, written, sender.destination)

		timer.Reset(sender.interval)
	}
}
