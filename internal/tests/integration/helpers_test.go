package integration

import (
	"bytes"
	"context"
	"io"
	"mcaststats/internal/global"
	"mcaststats/internal/logctx"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
)

// Concurrency safe output capture
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

// Global context with a running watcher writing into logOut.
// Returned flush stops the watcher once every queued event is written.
func newLoggingCtx(t *testing.T, verbosity int, logOut io.Writer) (ctx context.Context, flush func()) {
	done := make(chan struct{})
	logger := logctx.NewLogger("global", verbosity, done)
	logctx.StartWatcher(logger, logOut)
	ctx = logctx.WithLogger(context.Background(), logger)

	var once sync.Once
	flush = func() {
		once.Do(func() {
			close(done)
			logger.Wake()
			logger.Wait()
		})
	}
	t.Cleanup(flush)
	return
}

// Searches formatted log output for lines matching all non-empty filters
func filterLogLines(output, searchText, searchTag, searchSeverity string) (matches string, found bool) {
	bracketRe := regexp.MustCompile(`\[[^\]]*\]`)

	var foundLines []string
	for line := range strings.Lines(output) {
		if searchTag != "" {
			foundTag := false
			for _, bracket := range bracketRe.FindAllString(line, -1) {
				if strings.Contains(bracket, searchTag) {
					foundTag = true
					break
				}
			}
			if !foundTag {
				continue
			}
		}

		if searchSeverity != "" && !strings.Contains(line, "["+searchSeverity+"]") {
			continue
		}
		if searchText != "" && !strings.Contains(line, searchText) {
			continue
		}

		foundLines = append(foundLines, line)
		found = true
	}

	matches = strings.Join(foundLines, "")
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

var testNamespace = []string{global.NSTest}
