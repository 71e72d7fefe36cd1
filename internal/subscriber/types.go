package subscriber

import (
	"context"
	"io"
	"mcaststats/internal/queue/ring"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// On-disk layout of ClientConfig.xml. Root element name is not checked.
type XMLConfig struct {
	MulticastAddress string `xml:"MulticastAddress"`
	Port             string `xml:"Port"`
}

type Config struct {
	GroupAddress string
	Group        net.IP // nil when GroupAddress did not parse (join is skipped)
	Port         int
	StrictJoin   bool // Treat a skipped or failed group join as fatal

	HistoryCapacity int
	SuspendPoll     time.Duration
	ControlPoll     time.Duration
	ProcessIdle     time.Duration
}

// Where the control loop reads keys and writes reports
type Console struct {
	Input       io.Reader
	Output      io.Writer
	ClearScreen bool // Output is a terminal that understands ANSI clear
}

// Receiving side of the socket (satisfied by *net.UDPConn)
type PacketReader interface {
	ReadFrom(p []byte) (n int, addr net.Addr, err error)
}

// Monotonic packet counters, never reset
type Counters struct {
	Received atomic.Uint64 // datagrams decoded into history
	Lost     atomic.Uint64 // failed receives and undecodable datagrams
}

// RECEIVING/SUSPENDED flag.
// Flips are serialized by mu; the receive loop reads without taking mu.
type ReceiveSwitch struct {
	mu sync.Mutex
	on atomic.Bool
}

type Daemon struct {
	cfg     Config
	console Console
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	openSocket func(port int) (*net.UDPConn, error)
	joinGroup  func(conn *net.UDPConn, group net.IP) error
	conn       *net.UDPConn
	closeOnce  sync.Once

	History  *ring.Buffer[int32]
	Counters *Counters
	Switch   *ReceiveSwitch

	Receiver   *Receiver
	Processor  *Processor
	Controller *Controller
}

// Receive loop worker
type Receiver struct {
	Namespace   []string
	conn        PacketReader
	history     *ring.Buffer[int32]
	counters    *Counters
	receiving   *ReceiveSwitch
	suspendPoll time.Duration
}

// Placeholder processing worker
type Processor struct {
	Namespace []string
	history   *ring.Buffer[int32]
	idle      time.Duration
}

// Keypress driven toggle and statistics report
type Controller struct {
	Namespace []string
	console   Console
	history   *ring.Buffer[int32]
	counters  *Counters
	receiving *ReceiveSwitch
	poll      time.Duration
}
