package logctx

import (
	"sync"
	"time"
)

// Single log record
type Event struct {
	Timestamp time.Time
	Severity  string
	Tags      []string
	Message   string
}

// Buffered logger shared through context by every goroutine of a daemon
type Logger struct {
	ID         string
	CreatedAt  time.Time
	PrintLevel int             // Highest verbosity recorded (errors always pass)
	Done       <-chan struct{} // Closed when the watcher should drain and exit
	queue      []Event
	mutex      sync.Mutex // guards queue and PrintLevel
	cond       *sync.Cond
	wg         *sync.WaitGroup
}

// Tracks consecutive identical messages seen by the watcher
type repeatTracker struct {
	lastMsg      string
	count        int
	lastNoticeAt time.Time
}
