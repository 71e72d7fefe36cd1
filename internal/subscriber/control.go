package subscriber

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mcaststats/internal/calc"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/queue/ring"
	"runtime/debug"
	"time"
)

func NewController(namespace []string, console Console, history *ring.Buffer[int32], counters *Counters, receiving *ReceiveSwitch, poll time.Duration) (new *Controller) {
	new = &Controller{
		Namespace: append(append([]string(nil), namespace...), global.NSControl),
		console:   console,
		history:   history,
		counters:  counters,
		receiving: receiving,
		poll:      poll,
	}
	return
}

// Reads console keys; each Enter toggles receiving and prints a report.
// Console EOF stops this loop only.
func (controller *Controller) Run(ctx context.Context) {
	defer func() {
		if fatalError := recover(); fatalError != nil {
			logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
				"Error in control loop: %v\n%s", fatalError, debug.Stack())
		}
	}()

	reader := bufio.NewReader(controller.console.Input)
	for {
		if ctx.Err() != nil {
			return
		}

		key, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
					"Console input closed, toggle is no longer available\n")
			} else {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
					"Failed reading console input: %v\n", err)
			}
			return
		}

		if key == '\r' {
			// CRLF is one keypress; only look at bytes already read so this never blocks
			if reader.Buffered() > 0 {
				next, peekErr := reader.Peek(1)
				if peekErr == nil && next[0] == '\n' {
					reader.Discard(1)
				}
			}
		}

		if key == '\n' || key == '\r' {
			err = controller.Toggle(ctx)
			if err != nil {
				logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
					"Failed writing report: %v\n", err)
			}
		}

		if !sleepCtx(ctx, controller.poll) {
			return
		}
	}
}

// Flips the receive switch then prints statistics over the current history
func (controller *Controller) Toggle(ctx context.Context) (err error) {
	receiving := controller.receiving.Toggle()
	logctx.LogEvent(ctx, global.VerbosityProgress, global.InfoLog,
		"Receive switch now %s\n", stateName(receiving))

	out := controller.console.Output
	if controller.console.ClearScreen {
		_, err = io.WriteString(out, clearSequence)
		if err != nil {
			return
		}
	}

	snapshot := controller.history.Snapshot()
	summary, ok := calc.Summarize(snapshot)
	if ok {
		err = WriteReport(out, summary, controller.counters.Lost.Load(), controller.counters.Received.Load())
	} else {
		err = WriteNoData(out)
	}
	if err != nil {
		return
	}

	if receiving {
		_, err = fmt.Fprintln(out, "Resumed receiving packets (press Enter to suspend)")
	} else {
		_, err = fmt.Fprintln(out, "Suspended receiving packets (press Enter to resume)")
	}
	return
}
