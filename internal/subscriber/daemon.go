// Daemon that joins a multicast group and keeps rolling statistics over received samples
package subscriber

import (
	"context"
	"fmt"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/network"
	"mcaststats/internal/queue/ring"
	"time"
)

// Create new subscriber daemon instance
func NewDaemon(cfg Config, console Console) (new *Daemon) {
	ctx, cancel := context.WithCancel(context.Background())
	new = &Daemon{
		cfg:        cfg,
		console:    console,
		ctx:        ctx,
		cancel:     cancel,
		openSocket: network.ReuseUDPPort,
		joinGroup:  network.JoinGroup,
		Counters:   &Counters{},
		Switch:     NewReceiveSwitch(true),
	}
	return
}

// Binds the port, joins the group and starts the receive, processing and control loops
func (daemon *Daemon) Start(globalCtx context.Context) (err error) {
	// Values only, daemon.cancel from NewDaemon still ends this context
	daemon.ctx = logctx.WithLogger(daemon.ctx, logctx.GetLogger(globalCtx))
	daemon.ctx = logctx.AppendCtxTag(daemon.ctx, global.NSSub)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog, "Starting...\n")

	daemon.cfg.setDefaults()
	err = daemon.cfg.validate()
	if err != nil {
		err = fmt.Errorf("invalid configuration: %w", err)
		return
	}

	daemon.History, err = ring.New[int32]([]string{global.NSSub}, daemon.cfg.HistoryCapacity)
	if err != nil {
		err = fmt.Errorf("failed to create history buffer: %w", err)
		return
	}

	conn, err := daemon.openSocket(daemon.cfg.Port)
	if err != nil {
		err = fmt.Errorf("failed to bind port %d: %w", daemon.cfg.Port, err)
		return
	}
	daemon.conn = conn

	err = daemon.join()
	if err != nil {
		daemon.closeSocket()
		return
	}

	namespace := []string{global.NSSub}
	daemon.Receiver = NewReceiver(namespace, conn, daemon.History, daemon.Counters, daemon.Switch, daemon.cfg.SuspendPoll)
	daemon.Processor = NewProcessor(namespace, daemon.History, daemon.cfg.ProcessIdle)
	daemon.Controller = NewController(namespace, daemon.console, daemon.History, daemon.Counters, daemon.Switch, daemon.cfg.ControlPoll)

	recvCtx := logctx.AppendCtxTag(daemon.ctx, global.NSRecv)
	daemon.wg.Add(1)
	go func() {
		defer daemon.wg.Done()
		daemon.Receiver.Run(recvCtx)
	}()

	procCtx := logctx.AppendCtxTag(daemon.ctx, global.NSProc)
	daemon.wg.Add(1)
	go func() {
		defer daemon.wg.Done()
		daemon.Processor.Run(procCtx)
	}()

	// Not tracked by wg: a blocked console read cannot be interrupted, process exit ends it
	controlCtx := logctx.AppendCtxTag(daemon.ctx, global.NSControl)
	go daemon.Controller.Run(controlCtx)

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Client is listening on port %d. Press Enter to toggle receiving and show statistics\n", daemon.cfg.Port)
	return
}

// Joins the configured group. Without StrictJoin a failure only degrades the daemon
// to receiving datagrams addressed directly to the port.
func (daemon *Daemon) join() (err error) {
	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Joining to multicast group %q...\n", daemon.cfg.GroupAddress)

	if daemon.cfg.Group == nil {
		err = fmt.Errorf("impossible to parse multicast address %q", daemon.cfg.GroupAddress)
	} else {
		if !network.IsMulticastGroup(daemon.cfg.Group) {
			logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
				"Address %s is not in the multicast range\n", daemon.cfg.Group)
		}
		err = daemon.joinGroup(daemon.conn, daemon.cfg.Group)
		if err != nil {
			err = fmt.Errorf("failed to join multicast group: %w", err)
		}
	}

	if err == nil {
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Successfully joined multicast group!\n")
		return
	}
	if daemon.cfg.StrictJoin {
		return
	}

	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
		"%v: continuing without group membership\n", err)
	err = nil
	return
}

// Blocks until shutdown
func (daemon *Daemon) Run() {
	<-daemon.ctx.Done()
	daemon.wg.Wait()
}

func (daemon *Daemon) closeSocket() {
	daemon.closeOnce.Do(func() {
		if daemon.conn != nil {
			daemon.conn.Close()
		}
	})
}

// Stops all loops and closes the socket
func (daemon *Daemon) Shutdown() {
	logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
		"Daemon shutdown started...\n")

	daemon.cancel()
	daemon.closeSocket()

	done := make(chan struct{})
	go func() {
		daemon.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.InfoLog,
			"Daemon shutdown completed successfully (%s)\n", daemon.Totals())
	case <-time.After(global.SubscribeShutdownTimeout):
		logctx.LogEvent(daemon.ctx, global.VerbosityStandard, global.WarnLog,
			"Timeout: subscribe daemon did not shutdown within %v seconds\n",
			global.SubscribeShutdownTimeout.Seconds())
	}
}

// Packet and history counters for the shutdown line
func (daemon *Daemon) Totals() (totals string) {
	totals = fmt.Sprintf("%d received, %d lost", daemon.Counters.Received.Load(), daemon.Counters.Lost.Load())
	if daemon.History == nil {
		return
	}
	metrics := daemon.History.Metrics
	totals += fmt.Sprintf(", history %d/%d, %d pushed, %d evicted, %d snapshots",
		daemon.History.Len(), daemon.History.Cap(),
		metrics.Pushes.Load(), metrics.Evictions.Load(), metrics.Snapshots.Load())
	return
}
