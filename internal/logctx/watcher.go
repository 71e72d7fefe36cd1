package logctx

import (
	"fmt"
	"io"
	"mcaststats/internal/global"
	"strings"
	"time"
)

const (
	repeatWindow   time.Duration = 5 * time.Second
	repeatMinimum  int           = 10
	repeatCooldown time.Duration = 1 * time.Minute
)

// Hold main thread exit until the watcher has drained
func (logger *Logger) Wait() {
	logger.wg.Wait()
}

// Wakes the watcher so it can notice Done
func (logger *Logger) Wake() {
	logger.mutex.Lock()
	logger.cond.Broadcast()
	logger.mutex.Unlock()
}

// Starts a goroutine writing formatted events to output until logger.Done is closed.
// Bursts of identical messages are collapsed into a periodic suppression notice.
func StartWatcher(logger *Logger, output io.Writer) {
	logger.wg.Add(1)

	go func() {
		defer logger.wg.Done()

		var repeats repeatTracker
		for {
			event, ok := logger.next()
			if !ok {
				return
			}

			now := time.Now()
			if event.Message != "" && event.Message == repeats.lastMsg && now.Sub(event.Timestamp) <= repeatWindow {
				repeats.count++
				if repeats.count >= repeatMinimum && now.Sub(repeats.lastNoticeAt) >= repeatCooldown {
					fmt.Fprintf(output, "[%s] [%s] [%s] Suppressed %d repeated messages: %s\n",
						padTimestamp(event.Timestamp),
						strings.Join(event.Tags, "/"),
						global.InfoLog,
						repeats.count,
						strings.TrimSuffix(repeats.lastMsg, "\n"))
					repeats.lastNoticeAt = now
					repeats.count = 0
				}
				continue
			}
			repeats.lastMsg = event.Message
			repeats.count = 1

			fmt.Fprint(output, event.Format())
		}
	}()
}

// Blocks for the next queued event; false once Done is closed and nothing is pending
func (logger *Logger) next() (event Event, ok bool) {
	logger.mutex.Lock()
	defer logger.mutex.Unlock()

	for len(logger.queue) == 0 {
		select {
		case <-logger.Done:
			return
		default:
		}
		logger.cond.Wait()
	}

	event = logger.queue[0]
	logger.queue = logger.queue[1:]
	ok = true
	return
}
