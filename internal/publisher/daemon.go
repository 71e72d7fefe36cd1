// Daemon that periodically multicasts random samples
package publisher

import (
	"context"
	"fmt"
	"math/rand/v2"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/network"
	"net"
	"time"
)

// Create new publisher daemon instance
func NewDaemon(cfg Config) (new *Daemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &Daemon{
		cfg:        cfg,
		ctx:        ctx,
		cancel:     cancel,
		openSocket: openMulticastSocket,
	}
	return
}

func openMulticastSocket(group net.IP, port int) (conn PacketWriter, destination *net.UDPAddr, err error) {
	udpConn, destination, err := network.NewMulticastSender(group, port)
	if err != nil {
		return
	}
	conn = udpConn
	return
}

// Validates config, opens the socket, joins the group and starts the send loop.
// Nothing touches the network when the config is invalid.
func (daemon *Daemon) Start(globalCtx context.Context) (err error) {
	// Values only, daemon.cancel from NewDaemon still ends this context
	daemon.ctx = logctx.WithLogger(daemon.ctx, logctx.GetLogger(globalCtx))
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSPub)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	daemon.cfg.setDefaults()
	err = daemon.cfg.validate()
	if err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	conn, destination, err := daemon.openSocket(daemon.cfg.Group, daemon.cfg.Port)
	if err != nil {
		err = fmt.Errorf("failed to join multicast group: %w", err)
		return
	}
	daemon.conn = conn

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	daemon.Sender = NewSender([]string{global.NSPub}, conn, destination, rng, daemon.cfg)

	sendCtx := logctx.AppendCtxTag(daemon.ctx, global.NSSend)
	daemon.wg.Add(1)
	go func() {
		defer daemon.wg.Done()
		daemon.runErr = daemon.Sender.Run(sendCtx)
		// Loop only returns on shutdown or failure, either way the daemon is done
		daemon.cancel()
	}()

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"The Server is running. The Data sending to %s:%d\n", daemon.cfg.GroupAddress, daemon.cfg.Port)
	return
}

// Blocks until the send loop ends, returning its failure if any
func (daemon *Daemon) Run() (err error) {
	<-daemon.ctx.Done()
	daemon.wg.Wait()
	err = daemon.runErr
	return
}

// Stops the send loop and closes the socket
func (daemon *Daemon) Shutdown() {
	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Daemon shutdown started...\n")

	daemon.cancel()
	daemon.closeOnce.Do(func() {
		if daemon.conn != nil {
			daemon.conn.Close()
		}
	})

	done := make(chan struct{})
	go func() {
		daemon.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown completed successfully (%s)\n", daemon.Totals())
	case <-time.After(global.PublishShutdownTimeout):
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
			"Timeout: publish daemon did not shutdown within %v seconds\n",
			global.PublishShutdownTimeout.Seconds())
	}
}

// Send counters for the shutdown line
func (daemon *Daemon) Totals() (totals string) {
	if daemon.Sender == nil {
		totals = "0 samples sent"
		return
	}
	metrics := &daemon.Sender.Metrics
	totals = fmt.Sprintf("%d samples sent, %d bytes, last value %d",
		metrics.TotalPackets.Load(), metrics.SumBytes.Load(), metrics.LastValue.Load())
	return
}
