package logctx

import (
	"context"
	"mcaststats/internal/global"
	"testing"
	"time"
)

func TestLogEvent(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	ctx := New(context.Background(), global.NSTest, 2, done)
	logger := GetLogger(ctx)
	if logger == nil {
		t.Fatalf("expected logger creation, got nil logger")
	}

	tests := []struct {
		name          string
		logLevel      int
		eventLevel    int
		severity      string
		message       string
		vars          []any
		expectEvents  int
		expectMessage string
	}{
		{
			name:          "event level below print level is logged",
			logLevel:      2,
			eventLevel:    1,
			severity:      global.InfoLog,
			message:       "joined group",
			expectEvents:  1,
			expectMessage: "joined group",
		},
		{
			name:         "event level above print level is dropped",
			logLevel:     1,
			eventLevel:   global.VerbosityData,
			severity:     global.InfoLog,
			message:      "Received data: 7",
			expectEvents: 0,
		},
		{
			name:          "errors bypass level filtering",
			logLevel:      global.VerbosityNone,
			eventLevel:    global.VerbosityDebug,
			severity:      global.ErrorLog,
			message:       "send failed",
			expectEvents:  1,
			expectMessage: "send failed",
		},
		{
			name:          "formatted message",
			logLevel:      3,
			eventLevel:    3,
			severity:      global.InfoLog,
			message:       "Received data: %d",
			vars:          []any{42},
			expectEvents:  1,
			expectMessage: "Received data: 42",
		},
		{
			name:          "variables without verbs are ignored",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.WarnLog,
			message:       "plain text",
			vars:          []any{123},
			expectEvents:  1,
			expectMessage: "plain text",
		},
		{
			name:          "verb without variables is kept literal",
			logLevel:      3,
			eventLevel:    2,
			severity:      global.InfoLog,
			message:       "literal %d",
			expectEvents:  1,
			expectMessage: "literal %d",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.mutex.Lock()
			logger.queue = []Event{}
			logger.mutex.Unlock()

			SetLogLevel(ctx, tt.logLevel)
			LogEvent(ctx, tt.eventLevel, tt.severity, tt.message, tt.vars...)

			logger.mutex.Lock()
			defer logger.mutex.Unlock()

			if got := len(logger.queue); got != tt.expectEvents {
				t.Fatalf("expected %d events, got %d", tt.expectEvents, got)
			}
			if tt.expectEvents == 0 {
				return
			}

			ev := logger.queue[0]
			if ev.Severity != tt.severity {
				t.Errorf("severity mismatch: got %q want %q", ev.Severity, tt.severity)
			}
			if ev.Message != tt.expectMessage {
				t.Errorf("message mismatch: got %q want %q", ev.Message, tt.expectMessage)
			}
			if time.Since(ev.Timestamp) > time.Second {
				t.Errorf("event timestamp too old: %v", ev.Timestamp)
			}
		})
	}
}

func TestLogEvent_NoLogger(t *testing.T) {
	// Must not panic
	LogEvent(context.Background(), global.VerbosityStandard, global.InfoLog, "nobody listening\n")
}

func TestLogEvent_CarriesTags(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	ctx := New(context.Background(), global.NSTest, global.VerbosityStandard, done)
	ctx = AppendCtxTag(ctx, global.NSSub)
	ctx = AppendCtxTag(ctx, global.NSRecv)

	LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "tagged\n")

	logger := GetLogger(ctx)
	logger.mutex.Lock()
	defer logger.mutex.Unlock()
	if len(logger.queue) != 1 {
		t.Fatalf("expected 1 event, got %d", len(logger.queue))
	}
	tags := logger.queue[0].Tags
	if len(tags) != 2 || tags[0] != global.NSSub || tags[1] != global.NSRecv {
		t.Fatalf("unexpected tags %v", tags)
	}
}
