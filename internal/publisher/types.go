package publisher

import (
	"context"
	"io"
	"math/rand/v2"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// On-disk layout of ServerConfig.xml. Root element name is not checked.
type XMLConfig struct {
	MulticastAddress string `xml:"MulticastAddress"`
	Port             string `xml:"Port"`
	MinValue         string `xml:"MinValue"`
	MaxValue         string `xml:"MaxValue"`
}

type Config struct {
	GroupAddress string
	Group        net.IP // parsed GroupAddress
	Port         int
	MinValue     int32 // inclusive
	MaxValue     int32 // exclusive
	SendInterval time.Duration
}

// Sending side of the socket (satisfied by *net.UDPConn)
type PacketWriter interface {
	WriteToUDP(b []byte, addr *net.UDPAddr) (int, error)
	io.Closer
}

// Opens the sending socket and joins the group
type SocketOpener func(group net.IP, port int) (conn PacketWriter, destination *net.UDPAddr, err error)

type Daemon struct {
	cfg    Config
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	openSocket SocketOpener
	conn       PacketWriter
	closeOnce  sync.Once
	runErr     error
	Sender     *Sender
}

// Send loop worker
type Sender struct {
	Namespace   []string
	conn        PacketWriter
	destination *net.UDPAddr
	rng         *rand.Rand
	minValue    int32
	maxValue    int32
	interval    time.Duration
	Metrics     MetricStorage
}

type MetricStorage struct {
	TotalPackets atomic.Uint64 // datagrams handed to the socket
	SumBytes     atomic.Uint64
	LastValue    atomic.Int64
}
