package logctx

import (
	"bytes"
	"context"
	"mcaststats/internal/global"
	"strings"
	"testing"
)

func TestWatcher_DrainsOnDone(t *testing.T) {
	done := make(chan struct{})
	ctx := New(context.Background(), global.NSTest, global.VerbosityStandard, done)
	logger := GetLogger(ctx)

	var output bytes.Buffer
	LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "first\n")
	LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "second\n")

	StartWatcher(logger, &output)
	close(done)
	logger.Wake()
	logger.Wait()

	out := output.String()
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Fatalf("expected both queued events written, got:\n%s", out)
	}
	if strings.Index(out, "first") > strings.Index(out, "second") {
		t.Fatalf("events written out of order:\n%s", out)
	}
}

func TestWatcher_SuppressesRepeats(t *testing.T) {
	done := make(chan struct{})
	ctx := New(context.Background(), global.NSTest, global.VerbosityDebug, done)
	logger := GetLogger(ctx)

	var output bytes.Buffer
	StartWatcher(logger, &output)

	// Wake with nothing queued must not write anything
	logger.Wake()

	const repeats = 11
	for i := 0; i < repeats; i++ {
		LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "SocketException: connection refused\n")
	}

	close(done)
	logger.Wake()
	logger.Wait()

	out := output.String()
	if strings.Count(out, "[Warn] SocketException") != 1 {
		t.Fatalf("expected the message printed once, got:\n%s", out)
	}
	if !strings.Contains(out, "Suppressed 10 repeated messages") {
		t.Fatalf("expected suppression notice, got:\n%s", out)
	}
}
