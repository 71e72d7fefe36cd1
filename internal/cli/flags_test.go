package cli

import (
	"mcaststats/internal/global"
	"testing"
)

func resetVerbosity(t *testing.T) {
	previous := global.Verbosity
	t.Cleanup(func() { global.Verbosity = previous })
}

func TestSubscribeFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantPath      string
		wantStrict    bool
		wantVerbosity int
	}{
		{name: "defaults", args: nil, wantPath: global.DefaultSubscriberConfigPath, wantVerbosity: 1},
		{name: "short config", args: []string{"-c", "other.xml"}, wantPath: "other.xml", wantVerbosity: 1},
		{
			name:          "all long",
			args:          []string{"--config", "x.xml", "--strict-join", "--verbosity", "3"},
			wantPath:      "x.xml",
			wantStrict:    true,
			wantVerbosity: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetVerbosity(t)

			commandFlags, opts := newSubscribeFlags("subscribe")
			err := commandFlags.Parse(tt.args)
			if err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}

			if opts.configPath != tt.wantPath {
				t.Errorf("expected config path %q, but got %q", tt.wantPath, opts.configPath)
			}
			if opts.strictJoin != tt.wantStrict {
				t.Errorf("expected strict join %v, but got %v", tt.wantStrict, opts.strictJoin)
			}
			if global.Verbosity != tt.wantVerbosity {
				t.Errorf("expected verbosity %d, but got %d", tt.wantVerbosity, global.Verbosity)
			}
		})
	}
}

func TestPublishFlags(t *testing.T) {
	resetVerbosity(t)

	commandFlags, configPath := newPublishFlags("publish")
	err := commandFlags.Parse([]string{"-v", "0"})
	if err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	if *configPath != global.DefaultPublisherConfigPath {
		t.Errorf("expected default config path %q, but got %q", global.DefaultPublisherConfigPath, *configPath)
	}
	if global.Verbosity != 0 {
		t.Errorf("expected verbosity 0, but got %d", global.Verbosity)
	}
}
