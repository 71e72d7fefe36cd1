package subscriber

import (
	"context"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"mcaststats/internal/queue/ring"
	"time"
)

func NewProcessor(namespace []string, history *ring.Buffer[int32], idle time.Duration) (new *Processor) {
	new = &Processor{
		Namespace: append(append([]string(nil), namespace...), global.NSProc),
		history:   history,
		idle:      idle,
	}
	return
}

// Background processing stage. Holds a history handle but currently performs no work.
func (processor *Processor) Run(ctx context.Context) {
	logctx.LogEvent(ctx, global.VerbosityDebug, global.InfoLog,
		"Processing stage idle (history capacity %d)\n", processor.history.Cap())

	for sleepCtx(ctx, processor.idle) {
	}
}
