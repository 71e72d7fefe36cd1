package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion string = "v0.2.0"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultPublisherConfigPath  string = "ServerConfig.xml"
	DefaultSubscriberConfigPath string = "ClientConfig.xml"

	// Subscriber history window
	DefaultHistoryCapacity int = 1000

	// Loop pacing
	DefaultSendInterval    time.Duration = 1000 * time.Millisecond // Publisher delay between datagrams
	DefaultSuspendPoll     time.Duration = 100 * time.Millisecond  // Receive loop re-check while suspended
	DefaultControlPoll     time.Duration = 500 * time.Millisecond  // Control loop delay between key reads
	DefaultProcessIdle     time.Duration = 500 * time.Millisecond  // Placeholder processing loop idle time
	DefaultMaxDatagramSize int           = 65535

	// Timeout values
	SubscribeShutdownTimeout time.Duration = 5 * time.Second
	PublishShutdownTimeout   time.Duration = 3 * time.Second

	// Namespacing Name Components
	NSTest    string = "Test"
	NSCLI     string = "CLI"
	NSPub     string = "Publisher"
	NSSub     string = "Subscriber"
	NSSend    string = "Sender"
	NSRecv    string = "Receiver"
	NSProc    string = "Processor"
	NSControl string = "Control"
	NSQueue   string = "Queue"
	NSSignal  string = "Signal"
)
